package bootstrap

import "fmt"

// FramePolicy decides what the loop does when a frame update fails.
type FramePolicy uint8

const (
	// HaltOnError stops the loop and returns the failure.
	HaltOnError FramePolicy = iota
	// SkipOnError logs the failure and keeps ticking.
	SkipOnError
)

func (p FramePolicy) String() string {
	switch p {
	case HaltOnError:
		return "halt"
	case SkipOnError:
		return "skip"
	default:
		return fmt.Sprintf("FramePolicy(%d)", uint8(p))
	}
}

// ParseFramePolicy parses "halt" or "skip".
func ParseFramePolicy(s string) (FramePolicy, error) {
	switch s {
	case "", "halt":
		return HaltOnError, nil
	case "skip":
		return SkipOnError, nil
	default:
		return HaltOnError, fmt.Errorf("unknown frame error policy %q (want halt or skip)", s)
	}
}

// Set implements pflag.Value.
func (p *FramePolicy) Set(s string) error {
	return p.UnmarshalText([]byte(s))
}

// Type implements pflag.Value.
func (p *FramePolicy) Type() string { return "policy" }

// UnmarshalText lets FramePolicy be parsed from the environment.
func (p *FramePolicy) UnmarshalText(text []byte) error {
	v, err := ParseFramePolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
