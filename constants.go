package numerics

// Method names accepted by ParseMethod
const (
	methodNameNewton = "newton"
	methodNameLinear = "linear"
	methodNameSpline = "spline"
)
