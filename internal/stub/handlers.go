package stub

import (
	"log"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"clubportal/internal/api"
	"clubportal/internal/auth"
	"clubportal/internal/model"
)

func (s *Server) handleAuth(c *gin.Context) {
	var req struct {
		Action   string `json:"action" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		FullName string `json:"full_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	switch req.Action {
	case "login":
		u := s.state.findByEmail(req.Email)
		if u == nil || u.passwordHash != hashPassword(req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid credentials"})
			return
		}
		s.respondWithToken(c, u)

	case "register":
		if req.FullName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "full name required"})
			return
		}
		if s.state.findByEmail(req.Email) != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "email already registered"})
			return
		}
		u := s.state.addUser(req.Email, req.Password, req.FullName, model.RoleMember)
		s.respondWithToken(c, u)

	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "unknown action"})
	}
}

func (s *Server) respondWithToken(c *gin.Context, u *userRec) {
	token, err := auth.Issue(strconv.Itoa(u.ID), u.Email, u.Role, s.cfg.JWTIssuer, s.cfg.JWTSigningKey, s.cfg.AccessTTL)
	if err != nil {
		log.Printf("token issue failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "token issue failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token, "user": u.User})
}

func (s *Server) handleListNews(c *gin.Context) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	out := []model.NewsItem{}
	out = append(out, s.state.news...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleCreateNews(c *gin.Context) {
	authorID, err := strconv.Atoi(c.GetHeader(api.HeaderUserID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "author id required"})
		return
	}

	var draft model.NewsDraft
	if err := c.ShouldBindJSON(&draft); err != nil || draft.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "title and content required"})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	author := s.state.findByID(authorID)
	if author == nil || author.Role != model.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	s.state.news = append(s.state.news, model.NewsItem{
		ID:         s.state.nextNewsID,
		Title:      draft.Title,
		Content:    draft.Content,
		AuthorName: author.FullName,
		ImageURL:   draft.ImageURL,
		VideoURL:   draft.VideoURL,
		CreatedAt:  now(),
	})
	s.state.nextNewsID++
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func requireAdmin(c *gin.Context) bool {
	if c.GetHeader(api.HeaderRole) != model.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return false
	}
	return true
}

func (s *Server) handleListApplications(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	out := []model.Application{}
	out = append(out, s.state.applications...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleSubmitApplication(c *gin.Context) {
	var form model.ApplicationForm
	if err := c.ShouldBindJSON(&form); err != nil || form.FullName == "" || form.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "name and email required"})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	s.state.applications = append(s.state.applications, model.Application{
		ID:        s.state.nextApplicationID,
		FullName:  form.FullName,
		Email:     form.Email,
		Phone:     form.Phone,
		Message:   form.Message,
		Status:    model.StatusPending,
		CreatedAt: now(),
	})
	s.state.nextApplicationID++
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// handleDecideApplication sets an application's status. Deliberately no
// guard against deciding an already decided application; the client relies
// on that.
func (s *Server) handleDecideApplication(c *gin.Context) {
	var req struct {
		ID     int    `json:"id" binding:"required"`
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if req.Status != model.StatusApproved && req.Status != model.StatusRejected {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid status"})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	for i := range s.state.applications {
		if s.state.applications[i].ID == req.ID {
			s.state.applications[i].Status = req.Status
			c.JSON(http.StatusOK, gin.H{"success": true})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "application not found"})
}

func (s *Server) handleListAttendance(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = today()
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"date": date, "attendance": s.state.attendanceFor(date)})
}

func (s *Server) handleToggleAttendance(c *gin.Context) {
	var req struct {
		UserID  int    `json:"user_id" binding:"required"`
		Date    string `json:"date"`
		Present bool   `json:"present"`
		Notes   string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if req.Date == "" {
		req.Date = today()
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	s.state.attendance[attendanceKey{date: req.Date, userID: req.UserID}] = attendanceRec{
		present: req.Present,
		notes:   req.Notes,
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleMembersGet(c *gin.Context) {
	switch {
	case c.Query("grades") == "true":
		s.handleListGrades(c)
	case c.Query("history") == "true":
		s.handleListHistory(c)
	default:
		if !requireAdmin(c) {
			return
		}
		showDeleted := c.Query("show_deleted") == "true"
		s.state.mu.Lock()
		defer s.state.mu.Unlock()
		users := s.state.listUsers(showDeleted)
		if users == nil {
			users = []model.User{}
		}
		c.JSON(http.StatusOK, users)
	}
}

// handleListGrades serves ?grades=true. Admins see everything; a member may
// only ask for their own records via user_id.
func (s *Server) handleListGrades(c *gin.Context) {
	role := c.GetHeader(api.HeaderRole)
	userIDParam := c.Query("user_id")

	if role != model.RoleAdmin {
		if role != model.RoleMember || userIDParam == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	out := []model.Grade{}
	for _, g := range s.state.grades {
		if userIDParam != "" {
			if id, err := strconv.Atoi(userIDParam); err != nil || g.UserID != id {
				continue
			}
		}
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleListHistory(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	out := []model.RoleHistoryRecord{}
	out = append(out, s.state.history...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleMembersPost(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	var req struct {
		Action   string `json:"action" binding:"required"`
		UserID   int    `json:"user_id"`
		Category string `json:"category"`
		Score    *int   `json:"score"`
		Comment  string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	switch req.Action {
	case "restore_user":
		s.handleRestore(c, req.UserID)
	case "add_grade":
		s.handleAddGrade(c, req.UserID, req.Category, req.Score, req.Comment)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "unknown action"})
	}
}

func (s *Server) handleRestore(c *gin.Context, userID int) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	u := s.state.findByID(userID)
	if u == nil || !u.deleted {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "user not found in archive"})
		return
	}
	u.deleted = false
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleAddGrade(c *gin.Context, userID int, category string, score *int, comment string) {
	graderID, err := strconv.Atoi(c.GetHeader(api.HeaderUserID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "grader id required"})
		return
	}
	if !model.ValidCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "unknown category"})
		return
	}
	if score == nil || *score < 0 || *score > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "score must be 0-100"})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	target := s.state.findByID(userID)
	grader := s.state.findByID(graderID)
	if target == nil || grader == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "user not found"})
		return
	}

	s.state.grades = append(s.state.grades, model.Grade{
		ID:           s.state.nextGradeID,
		UserID:       target.ID,
		UserName:     target.FullName,
		Category:     category,
		Score:        *score,
		Comment:      comment,
		GradedAt:     now(),
		GradedByName: grader.FullName,
	})
	s.state.nextGradeID++
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleChangeRole(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	var req struct {
		ID      int    `json:"id" binding:"required"`
		Role    string `json:"role" binding:"required"`
		AdminID *int   `json:"admin_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if req.Role != model.RoleAdmin && req.Role != model.RoleMember {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid role"})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	u := s.state.findByID(req.ID)
	if u == nil || u.deleted {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "user not found"})
		return
	}
	if u.Role != req.Role {
		s.state.recordRoleChange(u, u.Role, req.Role, req.AdminID)
		u.Role = req.Role
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleRemoveMember(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "User ID required"})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	u := s.state.findByID(id)
	if u == nil || u.deleted {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "user not found"})
		return
	}
	if u.Role == model.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot remove admin"})
		return
	}
	u.deleted = true
	c.JSON(http.StatusOK, gin.H{"success": true})
}
