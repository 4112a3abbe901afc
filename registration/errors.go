package registration

import "errors"

var (
	ErrTermsNotAccepted       = errors.New("terms and rules must both be accepted")
	ErrTeamNameRequired       = errors.New("team name is required")
	ErrTeamMemberNameRequired = errors.New("every team member needs a name")
	ErrTeamFull               = errors.New("team already has the maximum number of members")
	ErrLastTeamMember         = errors.New("a registration needs at least one team member")
	ErrMemberIndexOutOfRange  = errors.New("team member index out of range")

	ErrSubmissionInFlight = errors.New("registration is already being submitted")
	// ErrSubmissionFailed wraps any error returned by the Submitter.
	ErrSubmissionFailed = errors.New("registration submission failed")
)
