package a

func sign(x int) int {
	if x > 0 { // want "branch spans lines 4-6"
		return 1
	} else if x < 0 { // want "branch spans lines 6-8"
		return -1
	} else { // want "branch spans lines 8-10"
		return 0
	}
}

func clamp(x int) int {
	if x > 10 { // want "branch spans lines 14-16"
		x = 10
	}

	return x
}

func noBranches(x int) int {
	for i := 0; i < x; i++ {
		x--
	}

	return x
}
