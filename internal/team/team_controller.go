package team

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/ShubhamJagtap-29/gamersden/config"
	"github.com/ShubhamJagtap-29/gamersden/internal/middleware"
	"github.com/ShubhamJagtap-29/gamersden/internal/roles"
	"github.com/ShubhamJagtap-29/gamersden/internal/roster"
	"github.com/ShubhamJagtap-29/gamersden/pkg/responses"
	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
)

// TeamController handles team-related HTTP requests
type TeamController struct {
	repo       Repository
	membership *MembershipService
	appConfig  *config.Config
}

// NewTeamController creates a new team controller
func NewTeamController(repo Repository, membership *MembershipService, appConfig *config.Config) *TeamController {
	return &TeamController{
		repo:       repo,
		membership: membership,
		appConfig:  appConfig,
	}
}

// membershipStatus maps membership service errors to HTTP status codes.
func membershipStatus(err error) int {
	switch {
	case errors.Is(err, ErrTeamNotFound),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrApplicationNotFound),
		errors.Is(err, ErrNotAMember):
		return http.StatusNotFound
	case errors.Is(err, ErrRosterFull),
		errors.Is(err, ErrRoleConflict),
		errors.Is(err, ErrDuplicateGameMembership),
		errors.Is(err, ErrCaptainCannotLeave),
		errors.Is(err, ErrAlreadyAMember),
		errors.Is(err, ErrDuplicateApplication):
		return http.StatusConflict
	case errors.Is(err, ErrApplicationNotPending):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// isTeamCaptain checks if the user is the team's current captain.
func (tc *TeamController) isTeamCaptain(t *Team, userID uint) bool {
	return t.CaptainID != nil && *t.CaptainID == userID
}

func pageParams(c *gin.Context) (int, int) {
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
	return page, limit
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// --- DTOs for requests ---

type CreateTeamRequest struct {
	Name        string `json:"name" binding:"required,min=3,max=100"`
	Tag         string `json:"tag" binding:"max=8"`
	Description string `json:"description" binding:"max=1000"`
	Logo        string `json:"logo"`
	GameFocus   string `json:"game_focus" binding:"required,max=100"`
}

type AddMemberRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Role   string `json:"role" binding:"omitempty,oneof=member captain admin"`
}

type UpdateMemberRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=member captain admin"`
}

type ApplyRequest struct {
	Data map[string]interface{} `json:"data"`
}

type ApproveApplicationRequest struct {
	Role string `json:"role" binding:"omitempty,oneof=member captain admin"`
}

type UpdateTeamStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

type BanTeamRequest struct {
	Banned bool `json:"banned"`
}

// --- Team Handlers ---

// CreateTeam godoc
// @Summary Create a new team
// @Description Creates a new team with the authenticated user as captain.
// @Tags Teams
// @Accept json
// @Produce json
// @Param team body CreateTeamRequest true "Team Creation Data"
// @Success 201 {object} responses.SuccessResponse{data=Team} "Team created successfully"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 409 {object} responses.ErrorResponse "Team name taken or role conflict"
// @Security ApiKeyAuth
// @Router /teams [post]
func (tc *TeamController) CreateTeam(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	existing, _ := tc.repo.GetTeamByName(req.Name)
	if existing != nil {
		responses.SendError(c, http.StatusConflict, "Team name already exists")
		return
	}

	t := Team{
		Name:        req.Name,
		Slug:        slug.Make(req.Name),
		Tag:         strings.ToUpper(req.Tag),
		Description: req.Description,
		Logo:        req.Logo,
		GameFocus:   req.GameFocus,
		Status:      StatusPending,
	}
	if t.Logo == "" {
		t.Logo = DefaultLogoURL
	}

	if err := tc.repo.CreateTeam(&t); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to create team: "+err.Error())
		return
	}

	// The creator becomes the first member and captain; this also derives
	// their TEAM_CAPTAIN role.
	if err := tc.membership.AddMember(t.ID, userID, roles.MemberRoleCaptain); err != nil {
		responses.SendError(c, membershipStatus(err), err.Error())
		return
	}

	createdTeam, _ := tc.repo.GetTeamByID(t.ID)
	responses.SendSuccess(c, http.StatusCreated, "Team created successfully", createdTeam)
}

// GetTeamByID godoc
// @Summary Get a team by its ID
// @Description Retrieves details of a specific team, including its roster limit.
// @Tags Teams
// @Produce json
// @Param team_id path uint true "Team ID"
// @Success 200 {object} responses.SuccessResponse "Team details"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Router /teams/{team_id} [get]
func (tc *TeamController) GetTeamByID(c *gin.Context) {
	teamID, ok := pathID(c, "team_id")
	if !ok {
		return
	}

	t, err := tc.repo.GetTeamByID(teamID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve team: "+err.Error())
		return
	}
	if t == nil || t.IsBanned {
		responses.SendError(c, http.StatusNotFound, "Team not found")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team retrieved successfully", gin.H{
		"team":         t,
		"roster_limit": roster.LimitFor(t.GameFocus),
	})
}

// GetAllTeams godoc
// @Summary Get all teams
// @Description Retrieves a list of teams with optional filters and pagination.
// @Tags Teams
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param game query string false "Filter by game focus (partial match)"
// @Param status query string false "Filter by status (pending, approved, rejected)"
// @Param name query string false "Search by team name (partial match)"
// @Success 200 {object} responses.PaginatedResponse{data=[]Team} "List of teams"
// @Router /teams [get]
func (tc *TeamController) GetAllTeams(c *gin.Context) {
	page, limit := pageParams(c)

	filters := make(map[string]interface{})
	if game := c.Query("game"); game != "" {
		filters["game"] = game
	}
	if status := c.Query("status"); status != "" {
		filters["status"] = status
	}
	if name := c.Query("name"); name != "" {
		filters["name"] = name
	}

	teams, total, err := tc.repo.GetAllTeams(page, limit, filters)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve teams: "+err.Error())
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Teams retrieved successfully", teams, total, page, limit)
}

// GetTeamMembers godoc
// @Summary Get team members
// @Description Retrieves the active roster of a team.
// @Tags Team Members
// @Produce json
// @Param team_id path uint true "Team ID"
// @Success 200 {object} responses.SuccessResponse{data=[]TeamMember} "Team roster"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Router /teams/{team_id}/members [get]
func (tc *TeamController) GetTeamMembers(c *gin.Context) {
	teamID, ok := pathID(c, "team_id")
	if !ok {
		return
	}

	t, err := tc.repo.GetTeamByID(teamID)
	if err != nil || t == nil || t.IsBanned {
		responses.SendError(c, http.StatusNotFound, "Team not found")
		return
	}

	members, err := tc.repo.GetActiveMembers(teamID)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve members: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team members retrieved successfully", members)
}

// --- Membership Handlers ---

// AddMember godoc
// @Summary Add a member to a team
// @Description Adds a user to the roster. Only the captain can add members.
// @Tags Team Members
// @Accept json
// @Produce json
// @Param team_id path uint true "Team ID"
// @Param member body AddMemberRequest true "Member Data"
// @Success 200 {object} responses.SuccessResponse "Member added"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 403 {object} responses.ErrorResponse "Forbidden - Not the captain"
// @Failure 404 {object} responses.ErrorResponse "Team or user not found"
// @Failure 409 {object} responses.ErrorResponse "Roster full or role conflict"
// @Security ApiKeyAuth
// @Router /teams/{team_id}/members [post]
func (tc *TeamController) AddMember(c *gin.Context) {
	currentUserID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	teamID, ok := pathID(c, "team_id")
	if !ok {
		return
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if req.Role == "" {
		req.Role = roles.MemberRoleMember
	}

	t, err := tc.repo.GetTeamByID(teamID)
	if err != nil || t == nil {
		responses.SendError(c, http.StatusNotFound, "Team not found")
		return
	}
	if !tc.isTeamCaptain(t, currentUserID) {
		responses.SendError(c, http.StatusForbidden, "Only the team captain can add members")
		return
	}

	if err := tc.membership.AddMember(teamID, req.UserID, req.Role); err != nil {
		responses.SendError(c, membershipStatus(err), err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Member added successfully", nil)
}

// UpdateMemberRole godoc
// @Summary Update a team member's role
// @Description Changes a member's roster role. Only the captain can change roles.
// @Tags Team Members
// @Accept json
// @Produce json
// @Param team_id path uint true "Team ID"
// @Param user_id path uint true "User ID of the member"
// @Param role_update body UpdateMemberRoleRequest true "Role Update Data"
// @Success 200 {object} responses.SuccessResponse "Member role updated"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 403 {object} responses.ErrorResponse "Forbidden - Not the captain"
// @Failure 404 {object} responses.ErrorResponse "Team or member not found"
// @Failure 409 {object} responses.ErrorResponse "Role conflict"
// @Security ApiKeyAuth
// @Router /teams/{team_id}/members/{user_id}/role [put]
func (tc *TeamController) UpdateMemberRole(c *gin.Context) {
	currentUserID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	teamID, ok := pathID(c, "team_id")
	if !ok {
		return
	}
	memberUserID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	var req UpdateMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	t, err := tc.repo.GetTeamByID(teamID)
	if err != nil || t == nil {
		responses.SendError(c, http.StatusNotFound, "Team not found")
		return
	}
	if !tc.isTeamCaptain(t, currentUserID) {
		responses.SendError(c, http.StatusForbidden, "Only the team captain can change member roles")
		return
	}

	if err := tc.membership.UpdateMemberRole(teamID, memberUserID, req.Role); err != nil {
		responses.SendError(c, membershipStatus(err), err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Member role updated successfully", nil)
}

// RemoveMember godoc
// @Summary Remove a team member
// @Description Removes a member from the roster. Only the captain can remove members; the captain themselves must transfer first.
// @Tags Team Members
// @Produce json
// @Param team_id path uint true "Team ID"
// @Param user_id path uint true "User ID of the member to remove"
// @Success 200 {object} responses.SuccessResponse "Member removed"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 403 {object} responses.ErrorResponse "Forbidden - Not the captain"
// @Failure 404 {object} responses.ErrorResponse "Team or member not found"
// @Failure 409 {object} responses.ErrorResponse "Captain cannot be removed"
// @Security ApiKeyAuth
// @Router /teams/{team_id}/members/{user_id} [delete]
func (tc *TeamController) RemoveMember(c *gin.Context) {
	currentUserID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	teamID, ok := pathID(c, "team_id")
	if !ok {
		return
	}
	memberUserID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	t, err := tc.repo.GetTeamByID(teamID)
	if err != nil || t == nil {
		responses.SendError(c, http.StatusNotFound, "Team not found")
		return
	}
	if !tc.isTeamCaptain(t, currentUserID) {
		responses.SendError(c, http.StatusForbidden, "Only the team captain can remove members")
		return
	}

	if err := tc.membership.RemoveMember(teamID, memberUserID); err != nil {
		responses.SendError(c, membershipStatus(err), err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Member removed successfully", nil)
}

// LeaveTeam godoc
// @Summary Leave a team
// @Description Removes the authenticated user from the roster. The captain must transfer leadership first.
// @Tags Team Members
// @Produce json
// @Param team_id path uint true "Team ID"
// @Success 200 {object} responses.SuccessResponse "Left the team"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 404 {object} responses.ErrorResponse "Team not found or not a member"
// @Failure 409 {object} responses.ErrorResponse "Captain cannot leave"
// @Security ApiKeyAuth
// @Router /teams/{team_id}/leave [post]
func (tc *TeamController) LeaveTeam(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	teamID, ok := pathID(c, "team_id")
	if !ok {
		return
	}

	if err := tc.membership.LeaveTeam(teamID, userID); err != nil {
		responses.SendError(c, membershipStatus(err), err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Successfully left the team", nil)
}

// --- Application Handlers ---

// ApplyToTeam godoc
// @Summary Apply to join a team
// @Description Files a membership application for the authenticated user.
// @Tags Applications
// @Accept json
// @Produce json
// @Param team_id path uint true "Team ID"
// @Param application body ApplyRequest true "Application Data"
// @Success 201 {object} responses.SuccessResponse{data=TeamApplication} "Application filed"
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Failure 409 {object} responses.ErrorResponse "Already a member or application pending"
// @Security ApiKeyAuth
// @Router /teams/{team_id}/apply [post]
func (tc *TeamController) ApplyToTeam(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	teamID, ok := pathID(c, "team_id")
	if !ok {
		return
	}

	// Body is optional; tolerate an empty or missing one.
	var req ApplyRequest
	_ = c.ShouldBindJSON(&req)
	data := "{}"
	if len(req.Data) > 0 {
		raw, err := json.Marshal(req.Data)
		if err != nil {
			responses.SendError(c, http.StatusBadRequest, "Invalid application data")
			return
		}
		data = string(raw)
	}

	app, err := tc.membership.Apply(teamID, userID, data)
	if err != nil {
		responses.SendError(c, membershipStatus(err), err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Application filed successfully", app)
}

// GetTeamApplications godoc
// @Summary List applications for a team
// @Description Retrieves applications for a team. Captain only.
// @Tags Applications
// @Produce json
// @Param team_id path uint true "Team ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param status query string false "Filter by status" default(pending)
// @Success 200 {object} responses.PaginatedResponse{data=[]TeamApplication} "Applications"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 403 {object} responses.ErrorResponse "Forbidden - Not the captain"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Security ApiKeyAuth
// @Router /teams/{team_id}/applications [get]
func (tc *TeamController) GetTeamApplications(c *gin.Context) {
	currentUserID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	teamID, ok := pathID(c, "team_id")
	if !ok {
		return
	}

	t, err := tc.repo.GetTeamByID(teamID)
	if err != nil || t == nil {
		responses.SendError(c, http.StatusNotFound, "Team not found")
		return
	}
	if !tc.isTeamCaptain(t, currentUserID) {
		responses.SendError(c, http.StatusForbidden, "Only the team captain can view applications")
		return
	}

	page, limit := pageParams(c)
	status := strings.ToLower(c.DefaultQuery("status", StatusPending))

	apps, total, err := tc.repo.GetApplicationsByTeamID(teamID, status, page, limit)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve applications: "+err.Error())
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Applications retrieved successfully", apps, total, page, limit)
}

// RespondToApplication godoc
// @Summary Approve or reject an application
// @Description Captain approves or rejects a pending application. Approval adds the applicant to the roster.
// @Tags Applications
// @Accept json
// @Produce json
// @Param team_id path uint true "Team ID"
// @Param application_id path uint true "Application ID"
// @Param action path string true "Action: 'approve' or 'reject'"
// @Param body body ApproveApplicationRequest false "Role to grant on approval"
// @Success 200 {object} responses.SuccessResponse "Application processed"
// @Failure 400 {object} responses.ErrorResponse "Invalid input or application not pending"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 403 {object} responses.ErrorResponse "Forbidden - Not the captain"
// @Failure 404 {object} responses.ErrorResponse "Team or application not found"
// @Failure 409 {object} responses.ErrorResponse "Roster full, role conflict or duplicate game membership"
// @Security ApiKeyAuth
// @Router /teams/{team_id}/applications/{application_id}/{action} [put]
func (tc *TeamController) RespondToApplication(c *gin.Context) {
	currentUserID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.SendError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	teamID, ok := pathID(c, "team_id")
	if !ok {
		return
	}
	appID, ok := pathID(c, "application_id")
	if !ok {
		return
	}
	action := strings.ToLower(c.Param("action"))
	if action != "approve" && action != "reject" {
		responses.SendError(c, http.StatusBadRequest, "Invalid action. Must be 'approve' or 'reject'.")
		return
	}

	t, err := tc.repo.GetTeamByID(teamID)
	if err != nil || t == nil {
		responses.SendError(c, http.StatusNotFound, "Team not found")
		return
	}
	if !tc.isTeamCaptain(t, currentUserID) {
		responses.SendError(c, http.StatusForbidden, "Only the team captain can respond to applications")
		return
	}

	app, err := tc.repo.GetApplicationByID(appID)
	if err != nil || app == nil {
		responses.SendError(c, http.StatusNotFound, "Application not found")
		return
	}
	if app.TeamID != teamID {
		responses.SendError(c, http.StatusBadRequest, "Application does not belong to this team")
		return
	}

	if action == "approve" {
		var req ApproveApplicationRequest
		_ = c.ShouldBindJSON(&req)
		if req.Role == "" {
			req.Role = roles.MemberRoleMember
		}
		if err := tc.membership.ApproveApplication(appID, req.Role); err != nil {
			responses.SendError(c, membershipStatus(err), err.Error())
			return
		}
		responses.SendSuccess(c, http.StatusOK, "Application approved", nil)
		return
	}

	if err := tc.membership.RejectApplication(appID); err != nil {
		responses.SendError(c, membershipStatus(err), err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Application rejected", nil)
}

// --- Admin Handlers ---

// AdminGetAllTeams godoc
// @Summary List all teams (admin)
// @Description Retrieves all teams, optionally including banned ones.
// @Tags Admin
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param include_banned query bool false "Include banned teams" default(false)
// @Success 200 {object} responses.PaginatedResponse{data=[]Team} "All teams"
// @Security ApiKeyAuth
// @Router /admin/teams [get]
func (tc *TeamController) AdminGetAllTeams(c *gin.Context) {
	page, limit := pageParams(c)
	includeBanned, _ := strconv.ParseBool(c.DefaultQuery("include_banned", "false"))

	teams, total, err := tc.repo.GetAllTeamsAdmin(page, limit, includeBanned)
	if err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to retrieve teams: "+err.Error())
		return
	}
	responses.SendPaginated(c, http.StatusOK, "Teams retrieved successfully", teams, total, page, limit)
}

// AdminUpdateTeamStatus godoc
// @Summary Approve or reject a team (admin)
// @Tags Admin
// @Accept json
// @Produce json
// @Param team_id path uint true "Team ID"
// @Param status body UpdateTeamStatusRequest true "New status"
// @Success 200 {object} responses.SuccessResponse{data=Team} "Team status updated"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Security ApiKeyAuth
// @Router /admin/teams/{team_id}/status [put]
func (tc *TeamController) AdminUpdateTeamStatus(c *gin.Context) {
	teamID, ok := pathID(c, "team_id")
	if !ok {
		return
	}

	var req UpdateTeamStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	t, err := tc.repo.GetTeamByID(teamID)
	if err != nil || t == nil {
		responses.SendError(c, http.StatusNotFound, "Team not found")
		return
	}

	t.Status = req.Status
	if err := tc.repo.UpdateTeam(t); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update team: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team status updated", t)
}

// AdminBanTeam godoc
// @Summary Ban or unban a team (admin)
// @Tags Admin
// @Accept json
// @Produce json
// @Param team_id path uint true "Team ID"
// @Param body body BanTeamRequest true "Ban flag"
// @Success 200 {object} responses.SuccessResponse{data=Team} "Team ban flag updated"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Security ApiKeyAuth
// @Router /admin/teams/{team_id}/ban [put]
func (tc *TeamController) AdminBanTeam(c *gin.Context) {
	teamID, ok := pathID(c, "team_id")
	if !ok {
		return
	}

	var req BanTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	t, err := tc.repo.GetTeamByID(teamID)
	if err != nil || t == nil {
		responses.SendError(c, http.StatusNotFound, "Team not found")
		return
	}

	t.IsBanned = req.Banned
	if err := tc.repo.UpdateTeam(t); err != nil {
		responses.SendError(c, http.StatusInternalServerError, "Failed to update team: "+err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Team ban flag updated", t)
}

// AdminRemoveMember godoc
// @Summary Force-remove a team member (admin)
// @Description Removes any member from a roster, including the captain.
// @Tags Admin
// @Produce json
// @Param team_id path uint true "Team ID"
// @Param user_id path uint true "User ID of the member to remove"
// @Success 200 {object} responses.SuccessResponse "Member removed"
// @Failure 404 {object} responses.ErrorResponse "Team or member not found"
// @Security ApiKeyAuth
// @Router /admin/teams/{team_id}/members/{user_id} [delete]
func (tc *TeamController) AdminRemoveMember(c *gin.Context) {
	teamID, ok := pathID(c, "team_id")
	if !ok {
		return
	}
	memberUserID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	if err := tc.membership.RemoveMemberAsAdmin(teamID, memberUserID); err != nil {
		responses.SendError(c, membershipStatus(err), err.Error())
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Member removed successfully", nil)
}
