package mathutil

// Assert panics with msg when cond is false in ayadebug builds. Release builds compile the
// check away, leaving the violated precondition undefined.
func Assert(cond bool, msg string) {
	if Debug && !cond {
		panic("aya: " + msg)
	}
}
