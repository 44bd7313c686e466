package numerics

// sampledEngine is the method set shared by the engine's fitted interpolators.
type sampledEngine interface {
	Interpolator
	Len() int
	GetSIMDInfo() string
}

// methodInterpolator adapts a fitted engine interpolator to the public API.
// The gonum fitters behind it cannot represent duplicate abscissas,
// so input is always validated regardless of Config.Strict.
type methodInterpolator struct {
	sampledEngine
	method Method
}

func newMethodInterpolator(method Method, impl sampledEngine) *methodInterpolator {
	return &methodInterpolator{sampledEngine: impl, method: method}
}

// GetInfo returns information about the interpolator.
func (m *methodInterpolator) GetInfo() Info {
	return Info{
		Method:   m.method.String(),
		Points:   m.Len(),
		Strict:   true,
		SIMDType: "none",
	}
}
