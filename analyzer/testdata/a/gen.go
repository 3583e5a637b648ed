// Code generated by hand for tests. DO NOT EDIT.

package a

func generated(x bool) int {
	if x {
		return 1
	}

	return 0
}
