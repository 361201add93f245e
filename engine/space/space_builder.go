package space

// SpaceBuilderOption is a functional option for configuring a space during construction.
type SpaceBuilderOption func(*spaceImpl)

// WithName sets the name the space logs with.
//
// Parameters:
//   - name: the space name
//
// Returns:
//   - SpaceBuilderOption: functional option to set the name
func WithName(name string) SpaceBuilderOption {
	return func(s *spaceImpl) {
		if name != "" {
			s.name = name
		}
	}
}
