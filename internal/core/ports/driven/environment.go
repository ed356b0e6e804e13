package driven

// Environment looks up named variables.
type Environment interface {
	// LookupEnv returns the value of the named variable and whether it is set.
	// A variable set to the empty string is present.
	LookupEnv(name string) (string, bool)
}
