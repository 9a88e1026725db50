package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lastminute/internal/planner"
	"lastminute/internal/service"
)

func (s *Server) handleListCategories(c *gin.Context) {
	categories, err := s.categorySvc.List(c.Request.Context(), currentUser(c))
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"categories": categories})
}

type categoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func (s *Server) handleCreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	category, err := s.categorySvc.Create(c.Request.Context(), currentUser(c), req.Name)
	if err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"category": category})
}

func (s *Server) handleDeleteCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := s.categorySvc.Delete(c.Request.Context(), currentUser(c), id); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"status": "deleted"})
}

func (s *Server) handleListTasks(c *gin.Context) {
	tasks, err := s.taskSvc.ListTasks(c.Request.Context(), currentUser(c))
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"tasks": tasks})
}

type taskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"required"`
	Priority    string `json:"priority" binding:"required"`
	DueDate     string `json:"dueDate" binding:"required"`
	Time        string `json:"time"`
	Recurrence  string `json:"recurrence"`
	Notes       string `json:"notes"`
}

func (s *Server) handleCreateTask(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	task, err := s.taskSvc.CreateTask(c.Request.Context(), currentUser(c), service.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		Time:        req.Time,
		Recurrence:  req.Recurrence,
		Notes:       req.Notes,
	})
	if err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"task": task})
}

type taskUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"dueDate"`
	Time        *string `json:"time"`
	Recurrence  *string `json:"recurrence"`
	Notes       *string `json:"notes"`
}

func (s *Server) handleUpdateTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req taskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	task, err := s.taskSvc.UpdateTask(c.Request.Context(), currentUser(c), id, service.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		Time:        req.Time,
		Recurrence:  req.Recurrence,
		Notes:       req.Notes,
	})
	if err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"task": task})
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := s.taskSvc.DeleteTask(c.Request.Context(), currentUser(c), id); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"status": "deleted"})
}

type toggleRequest struct {
	Date string `json:"date" binding:"required"`
}

func (s *Server) handleToggleTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	result, err := s.taskSvc.ToggleCompletion(c.Request.Context(), currentUser(c), id, req.Date)
	if err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	respondSuccess(c, http.StatusOK, result)
}

// handlePlannerView materializes occurrences for the requested window and
// applies the filter/sort stage.
func (s *Server) handlePlannerView(c *gin.Context) {
	mode := planner.ViewMode(c.DefaultQuery("mode", string(planner.ViewWeek)))
	anchor := c.Query("date")
	if anchor == "" {
		anchor = planner.DateOf(timeNow()).String()
	}
	filter := planner.Filter{
		Category: c.Query("category"),
		Priority: c.Query("priority"),
		Status:   planner.Status(c.Query("status")),
		Search:   c.Query("q"),
	}
	sortKey := planner.SortKey(c.DefaultQuery("sort", string(planner.SortByDate)))

	occurrences, err := s.taskSvc.View(c.Request.Context(), currentUser(c), mode, anchor, filter, sortKey)
	if err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	if occurrences == nil {
		occurrences = []planner.Occurrence{}
	}
	respondSuccess(c, http.StatusOK, gin.H{"occurrences": occurrences})
}
