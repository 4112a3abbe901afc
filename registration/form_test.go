package registration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Dosada05/tournament-finder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func teamTournament(maxTeamSize int) models.Tournament {
	return models.Tournament{
		ID:               1,
		Title:            "Spring Championship 2024",
		Status:           models.StatusOpen,
		RegistrationType: models.RegistrationTeam,
		MaxTeamSize:      maxTeamSize,
	}
}

func soloTournament() models.Tournament {
	return models.Tournament{
		ID:               4,
		Title:            "Solo Showdown",
		Status:           models.StatusOpen,
		RegistrationType: models.RegistrationIndividual,
		MaxTeamSize:      1,
	}
}

type submitterFunc func(ctx context.Context, t models.Tournament, d models.RegistrationData) (*models.Confirmation, error)

func (f submitterFunc) Submit(ctx context.Context, t models.Tournament, d models.RegistrationData) (*models.Confirmation, error) {
	return f(ctx, t, d)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		kind    models.RegistrationType
		data    models.RegistrationData
		wantErr error
	}{
		{
			name:    "terms missing",
			kind:    models.RegistrationIndividual,
			data:    models.RegistrationData{PlayerName: "Ann", AgreeToRules: true},
			wantErr: ErrTermsNotAccepted,
		},
		{
			name:    "rules missing on a complete team",
			kind:    models.RegistrationTeam,
			data:    models.RegistrationData{TeamName: "Owls", TeamMembers: []string{"Bob"}, AgreeToTerms: true},
			wantErr: ErrTermsNotAccepted,
		},
		{
			name: "individual needs only consents",
			kind: models.RegistrationIndividual,
			data: models.RegistrationData{AgreeToTerms: true, AgreeToRules: true},
		},
		{
			name:    "team name blank after trim",
			kind:    models.RegistrationTeam,
			data:    models.RegistrationData{TeamName: "   ", TeamMembers: []string{"Bob"}, AgreeToTerms: true, AgreeToRules: true},
			wantErr: ErrTeamNameRequired,
		},
		{
			name:    "empty member entry",
			kind:    models.RegistrationTeam,
			data:    models.RegistrationData{TeamName: "Owls", TeamMembers: []string{"", "Alice"}, AgreeToTerms: true, AgreeToRules: true},
			wantErr: ErrTeamMemberNameRequired,
		},
		{
			name:    "whitespace member entry",
			kind:    models.RegistrationTeam,
			data:    models.RegistrationData{TeamName: "Owls", TeamMembers: []string{"Bob", "\t"}, AgreeToTerms: true, AgreeToRules: true},
			wantErr: ErrTeamMemberNameRequired,
		},
		{
			name: "complete team",
			kind: models.RegistrationTeam,
			data: models.RegistrationData{TeamName: "Owls", TeamMembers: []string{"Bob", "Alice"}, AgreeToTerms: true, AgreeToRules: true},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.kind, tc.data)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestForm_MemberLimits(t *testing.T) {
	f := NewForm(teamTournament(3), nil)
	require.Len(t, f.Data().TeamMembers, 1)

	require.NoError(t, f.AddMember("b"))
	require.NoError(t, f.AddMember("c"))
	assert.ErrorIs(t, f.AddMember("d"), ErrTeamFull)
	assert.Len(t, f.Data().TeamMembers, 3)

	require.NoError(t, f.RemoveMember(0))
	require.NoError(t, f.RemoveMember(0))
	assert.ErrorIs(t, f.RemoveMember(0), ErrLastTeamMember)
	assert.Equal(t, []string{"c"}, f.Data().TeamMembers)

	assert.ErrorIs(t, f.RemoveMember(5), ErrMemberIndexOutOfRange)
	assert.ErrorIs(t, f.SetMember(-1, "x"), ErrMemberIndexOutOfRange)
}

func TestForm_DefaultTeamSizeIsFive(t *testing.T) {
	f := NewForm(teamTournament(0), nil)
	for i := 0; i < 4; i++ {
		require.NoError(t, f.AddMember("m"))
	}
	assert.ErrorIs(t, f.AddMember("m"), ErrTeamFull)
	assert.Equal(t, 5, f.MaxMembers())
}

func TestForm_IndividualHasOneMember(t *testing.T) {
	f := NewForm(soloTournament(), nil)
	assert.ErrorIs(t, f.AddMember("friend"), ErrTeamFull)

	f.SetConsents(true, true)
	assert.True(t, f.Valid())
}

func TestForm_Valid(t *testing.T) {
	f := NewForm(teamTournament(5), nil)
	f.SetTeamName("Owls")
	require.NoError(t, f.SetMember(0, ""))
	require.NoError(t, f.AddMember("Alice"))
	f.SetConsents(true, true)
	assert.False(t, f.Valid())

	require.NoError(t, f.SetMember(0, "Bob"))
	assert.True(t, f.Valid())

	f.SetConsents(true, false)
	assert.False(t, f.Valid())
}

func TestForm_SubmitSuccess(t *testing.T) {
	f := NewForm(teamTournament(5), nil)
	f.SetPlayer("Bob", "bob@example.com")
	f.SetTeamName("Owls")
	require.NoError(t, f.SetMember(0, "Bob"))
	require.NoError(t, f.AddMember("Alice"))
	f.SetConsents(true, true)

	var got models.RegistrationData
	confirmation, err := f.Submit(context.Background(), submitterFunc(
		func(_ context.Context, tr models.Tournament, d models.RegistrationData) (*models.Confirmation, error) {
			assert.Equal(t, StateSubmitting, f.State())
			got = d
			return &models.Confirmation{ID: "c-1", TournamentID: tr.ID, Registration: d}, nil
		}))
	require.NoError(t, err)
	assert.Equal(t, "c-1", confirmation.ID)
	assert.Equal(t, []string{"Bob", "Alice"}, got.TeamMembers)
	assert.Equal(t, StateEditing, f.State())
}

func TestForm_SubmitInvalidDoesNotCallSubmitter(t *testing.T) {
	f := NewForm(teamTournament(5), nil)
	called := false

	_, err := f.Submit(context.Background(), submitterFunc(
		func(context.Context, models.Tournament, models.RegistrationData) (*models.Confirmation, error) {
			called = true
			return nil, nil
		}))
	assert.ErrorIs(t, err, ErrTermsNotAccepted)
	assert.False(t, called)
	assert.Equal(t, StateEditing, f.State())
}

func TestForm_SubmitFailureReturnsToEditing(t *testing.T) {
	f := NewForm(soloTournament(), nil)
	f.SetConsents(true, true)
	boom := errors.New("network down")

	_, err := f.Submit(context.Background(), submitterFunc(
		func(context.Context, models.Tournament, models.RegistrationData) (*models.Confirmation, error) {
			return nil, boom
		}))
	assert.ErrorIs(t, err, ErrSubmissionFailed)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, StateEditing, f.State())
}

func TestForm_RejectsReentrantSubmit(t *testing.T) {
	f := NewForm(soloTournament(), nil)
	f.SetConsents(true, true)

	entered := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		_, err := f.Submit(context.Background(), submitterFunc(
			func(context.Context, models.Tournament, models.RegistrationData) (*models.Confirmation, error) {
				close(entered)
				<-release
				return &models.Confirmation{ID: "first"}, nil
			}))
		done <- err
	}()

	select {
	case <-entered:
	case <-time.After(time.Second):
		t.Fatal("first submit never reached the submitter")
	}

	_, err := f.Submit(context.Background(), submitterFunc(
		func(context.Context, models.Tournament, models.RegistrationData) (*models.Confirmation, error) {
			t.Error("second submit must not reach the submitter")
			return nil, nil
		}))
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, StateEditing, f.State())
}
