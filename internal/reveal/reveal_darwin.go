//go:build darwin

package reveal

// Native returns the strategy for the platform this binary was built for
func Native() Strategy {
	return Finder{}
}
