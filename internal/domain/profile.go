package domain

// Profile is a named, persisted set of run options. Everything the run
// command accepts as flags can be captured in one.
type Profile struct {
	Name           string
	Runtime        RuntimeVersion
	DomainName     string
	Args           []string
	RedirectOutput bool
	PatchExit      bool
}
