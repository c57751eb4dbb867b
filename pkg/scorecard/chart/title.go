package chart

// StudentTitle is the title of a single student's charts.
func StudentTitle(prefix, name string) string {
	return prefix + " : " + name
}

// ClassTitle is the title of a class average view.
func ClassTitle(prefix, class string) string {
	return prefix + " : " + class + " átlag"
}

// OverallTitle is the title of the overall average view.
func OverallTitle(prefix string) string {
	return prefix + " : Átlag"
}
