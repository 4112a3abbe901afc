package handlers

import (
	"net/http"
	"strings"

	"github.com/Dosada05/tournament-finder/models"
	"github.com/Dosada05/tournament-finder/services"
	"github.com/Dosada05/tournament-finder/utils"
)

type RegistrationHandler struct {
	registrationService *services.RegistrationService
}

func NewRegistrationHandler(rs *services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{
		registrationService: rs,
	}
}

// RegisterHandler godoc
// @Summary Подать заявку на участие в турнире
// @Tags registrations
// @Description Team tournaments need a team name and named members up to the team size limit. Both consents are required.
// @Accept json
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Param body body models.RegistrationData true "Registration form"
// @Success 201 {object} map[string]interface{} "Заявка подтверждена"
// @Failure 400 {object} map[string]string "Некорректный запрос"
// @Failure 403 {object} map[string]string "Регистрация закрыта"
// @Failure 404 {object} map[string]string "Турнир не найден"
// @Failure 409 {object} map[string]string "Турнир заполнен или email уже зарегистрирован"
// @Failure 422 {object} map[string]string "Ошибка валидации"
// @Failure 502 {object} map[string]string "Не удалось подтвердить заявку"
// @Router /tournaments/{tournamentID}/registrations [post]
func (h *RegistrationHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input models.RegistrationData
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if problems := validateContact(input); len(problems) > 0 {
		failedValidationResponse(w, r, problems)
		return
	}

	confirmation, err := h.registrationService.Register(r.Context(), tournamentID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"confirmation": confirmation}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func validateContact(input models.RegistrationData) map[string]string {
	problems := make(map[string]string)
	if strings.TrimSpace(input.PlayerName) == "" {
		problems["playerName"] = "must be provided"
	}
	if strings.TrimSpace(input.Email) == "" {
		problems["email"] = "must be provided"
	} else if !utils.IsValidEmail(strings.TrimSpace(input.Email)) {
		problems["email"] = "must be a valid email address"
	}
	return problems
}

// VerifyHandler godoc
// @Summary Проверить квитанцию регистрации
// @Tags registrations
// @Produce json
// @Param token query string true "Receipt token from the confirmation"
// @Success 200 {object} map[string]interface{} "Квитанция действительна"
// @Failure 401 {object} map[string]string "Недействительная квитанция"
// @Router /registrations/verify [get]
func (h *RegistrationHandler) VerifyHandler(w http.ResponseWriter, r *http.Request) {
	claims, err := h.registrationService.VerifyReceipt(r.URL.Query().Get("token"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	receipt := jsonResponse{
		"confirmationId": claims.ConfirmationID,
		"tournamentId":   claims.TournamentID,
	}
	if claims.IssuedAt != nil {
		receipt["issuedAt"] = claims.IssuedAt.Time
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"receipt": receipt}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
