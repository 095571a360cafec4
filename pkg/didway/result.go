package didway

// Status classifies the outcome of a single plugin invocation.
// Exactly one status applies per plugin per dispatch.
type Status int

const (
	// StatusNotImplemented means the plugin does not support the operation.
	// This is the default for every operation a plugin does not override.
	StatusNotImplemented Status = iota

	// StatusIgnored means the plugin supports the operation but declined
	// this particular request, e.g. because it does not handle the
	// requested method or target.
	StatusIgnored

	// StatusSuccess means the plugin processed the request and produced
	// a value.
	StatusSuccess
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusNotImplemented:
		return "not_implemented"
	case StatusIgnored:
		return "ignored"
	case StatusSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// Result is the three-way outcome of one plugin operation call.
// Use the NotImplemented, Ignored, Success, and SuccessEmpty constructors;
// the zero value is a NotImplemented result.
type Result struct {
	status  Status
	text    string
	present bool
}

// NotImplemented reports that the plugin does not support the operation.
func NotImplemented() Result {
	return Result{status: StatusNotImplemented}
}

// Ignored reports that the plugin supports the operation but declined
// this request.
func Ignored() Result {
	return Result{status: StatusIgnored}
}

// Success reports that the plugin handled the request and produced the
// given textual artifact (e.g. a serialized document or proof).
func Success(text string) Result {
	return Result{status: StatusSuccess, text: text, present: true}
}

// SuccessEmpty reports that the plugin handled the request without
// producing an artifact. The result still counts toward the aggregated
// success list.
func SuccessEmpty() Result {
	return Result{status: StatusSuccess}
}

// Status returns the result's classification.
func (r Result) Status() Status {
	return r.status
}

// Artifact returns the produced artifact. Present is false for empty
// successes and for non-success results.
func (r Result) Artifact() Artifact {
	return Artifact{Text: r.text, Present: r.present}
}

// Artifact is one entry of an aggregated dispatch result: the optional
// textual output of a plugin that reported success. Present is false when
// the plugin succeeded without producing output.
type Artifact struct {
	Text    string
	Present bool
}
