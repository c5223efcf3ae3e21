package log

// Standard attribute keys for estimator operations. Using these keys keeps
// log records filterable across callers (e.g. severity by model.name, or
// shape debugging by data.samples/data.features).
const (
	// ModelNameKey identifies the estimator type, e.g. "LinearRegression".
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "score".
	OperationKey = "ml.operation"

	// SamplesKey indicates the number of samples (rows) being processed.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of features (columns) being processed.
	FeaturesKey = "data.features"

	// R2Key records the coefficient of determination from a score operation.
	R2Key = "metrics.r2"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)
