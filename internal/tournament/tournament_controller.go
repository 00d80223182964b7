package tournament

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ShubhamJagtap-29/gamersden/internal/middleware"
	"github.com/ShubhamJagtap-29/gamersden/internal/team"
	"github.com/ShubhamJagtap-29/gamersden/pkg/responses"
	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
)

// TournamentController handles tournament-related HTTP requests
type TournamentController struct {
	repo    Repository
	service *Service
}

// NewTournamentController creates a new tournament controller
func NewTournamentController(repo Repository, service *Service) *TournamentController {
	return &TournamentController{repo: repo, service: service}
}

func registrationStatus(err error) int {
	switch {
	case errors.Is(err, ErrTournamentNotFound), errors.Is(err, team.ErrTeamNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyRegistered):
		return http.StatusConflict
	case errors.Is(err, ErrNotCaptain):
		return http.StatusForbidden
	case errors.Is(err, ErrTournamentClosed), errors.Is(err, ErrGameMismatch), errors.Is(err, ErrTeamNotEligible):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

type CreateTournamentRequest struct {
	Name     string    `json:"name" binding:"required,min=3,max=100"`
	Game     string    `json:"game" binding:"required,max=100"`
	TeamSize int       `json:"team_size" binding:"gte=1"`
	StartsAt time.Time `json:"starts_at" binding:"required"`
}

type RegisterTeamRequest struct {
	TeamID uint `json:"team_id" binding:"required"`
}

// GetAllTournaments godoc
// @Summary List tournaments
// @Tags Tournaments
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param status query string false "Filter by status (open, closed)"
// @Success 200 {object} responses.PaginatedResponse{data=[]Tournament} "Tournaments"
// @Router /tournaments [get]
func (tc *TournamentController) GetAllTournaments(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	tournaments, total, err := tc.repo.GetAllTournaments(page, limit, c.Query("status"))
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve tournaments: "+err.Error())
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Tournaments retrieved successfully", tournaments, total, page, limit)
}

// RegisterTeam godoc
// @Summary Register a team for a tournament
// @Description The team captain registers their approved team. All roster members gain the tournament participant role.
// @Tags Tournaments
// @Accept json
// @Produce json
// @Param tournament_id path uint true "Tournament ID"
// @Param body body RegisterTeamRequest true "Team to register"
// @Success 201 {object} responses.SuccessResponse{data=Registration} "Registered"
// @Failure 400 {object} responses.ErrorResponse "Closed, game mismatch or team not eligible"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 403 {object} responses.ErrorResponse "Not the captain"
// @Failure 404 {object} responses.ErrorResponse "Tournament or team not found"
// @Failure 409 {object} responses.ErrorResponse "Already registered"
// @Security ApiKeyAuth
// @Router /tournaments/{tournament_id}/register [post]
func (tc *TournamentController) RegisterTeam(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	tournamentID, err := strconv.ParseUint(c.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid tournament ID")
		return
	}

	var req RegisterTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	reg, err := tc.service.RegisterTeam(uint(tournamentID), req.TeamID, userID)
	if err != nil {
		responses.SendError(c, registrationStatus(err), err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Team registered successfully", reg)
}

// AdminCreateTournament godoc
// @Summary Create a tournament (admin)
// @Tags Admin
// @Accept json
// @Produce json
// @Param tournament body CreateTournamentRequest true "Tournament Data"
// @Success 201 {object} responses.SuccessResponse{data=Tournament} "Tournament created"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Security ApiKeyAuth
// @Router /admin/tournaments [post]
func (tc *TournamentController) AdminCreateTournament(c *gin.Context) {
	var req CreateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	tour := Tournament{
		Name:     req.Name,
		Slug:     slug.Make(req.Name),
		Game:     req.Game,
		Status:   StatusOpen,
		TeamSize: req.TeamSize,
		StartsAt: req.StartsAt,
	}
	if err := tc.repo.CreateTournament(&tour); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create tournament: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Tournament created successfully", tour)
}

// AdminCloseTournament godoc
// @Summary Close a tournament for registration (admin)
// @Tags Admin
// @Produce json
// @Param tournament_id path uint true "Tournament ID"
// @Success 200 {object} responses.SuccessResponse "Tournament closed"
// @Failure 404 {object} responses.ErrorResponse "Tournament not found"
// @Security ApiKeyAuth
// @Router /admin/tournaments/{tournament_id}/close [put]
func (tc *TournamentController) AdminCloseTournament(c *gin.Context) {
	tournamentID, err := strconv.ParseUint(c.Param("tournament_id"), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid tournament ID")
		return
	}

	if err := tc.service.Close(uint(tournamentID)); err != nil {
		responses.SendError(c, registrationStatus(err), err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Tournament closed", nil)
}
