package domain

// APISource names the remote source a user prefers. The orchestrator
// currently consults every known source regardless, most reliable first.
type APISource string

const (
	APISourceSvenskaSe   APISource = "svenskaSe"
	APISourceSynonymerSe APISource = "synonymerSe"
)

func (s APISource) String() string { return string(s) }

func (s APISource) IsValid() bool {
	switch s {
	case APISourceSvenskaSe, APISourceSynonymerSe:
		return true
	}
	return false
}
