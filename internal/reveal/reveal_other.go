//go:build !windows && !darwin

package reveal

// Native returns the strategy for the platform this binary was built for.
// Linux and the BSDs go through xdg-open.
func Native() Strategy {
	return XDGOpen{}
}
