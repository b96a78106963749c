package domain

// Stage names an eligibility stage of the matching pipeline.
type Stage string

const (
	StageTargeting      Stage = "targeting"
	StageDateWindow     Stage = "date_window"
	StageBudget         Stage = "budget"
	StageFrequency      Stage = "frequency"
	StageBlocklist      Stage = "blocklist"
	StageInvalidTraffic Stage = "invalid_traffic"

	// Stages outside the eligibility order that can still degrade a match.
	StageCandidates Stage = "candidates"
	StagePublisher  Stage = "publisher"
	StageGeo        Stage = "geo"
)

// FailPolicy decides what a stage does with a candidate when the store
// behind it errors or times out.
type FailPolicy string

const (
	// FailOpen treats the check as passed.
	FailOpen FailPolicy = "fail_open"
	// FailClosed treats the check as failed and excludes the candidate.
	FailClosed FailPolicy = "fail_closed"
)

// Reason explains a stage verdict.
type Reason string

const (
	ReasonEligible          Reason = "eligible"
	ReasonNoCandidates      Reason = "no_candidates"
	ReasonTargetingMismatch Reason = "targeting_mismatch"
	ReasonOutsideWindow     Reason = "outside_date_window"
	ReasonBudgetExhausted   Reason = "budget_exhausted"
	ReasonPacingLimit       Reason = "pacing_limit"
	ReasonPacingThrottled   Reason = "pacing_throttled"
	ReasonFrequencyCapped   Reason = "frequency_capped"
	ReasonBlocked           Reason = "blocked"
	ReasonInvalidTraffic    Reason = "invalid_traffic"
	ReasonStoreError        Reason = "store_error"
)

// StageResult is the verdict of one stage for one candidate.
type StageResult struct {
	Eligible bool
	Reason   Reason
}

// Pass is the eligible verdict.
func Pass() StageResult {
	return StageResult{Eligible: true, Reason: ReasonEligible}
}

// Reject excludes a candidate for the given reason.
func Reject(reason Reason) StageResult {
	return StageResult{Eligible: false, Reason: reason}
}
