package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lastminute/internal/repository"
	"lastminute/internal/service"
)

func documentFilterFromQuery(c *gin.Context) repository.DocumentFilter {
	semester, _ := strconv.Atoi(c.Query("semester"))
	return repository.DocumentFilter{
		Subject:  c.Query("subject"),
		Semester: semester,
		Type:     c.Query("type"),
		Query:    c.Query("q"),
	}
}

func (s *Server) handleBrowseDocuments(c *gin.Context) {
	docs, err := s.documentSvc.Browse(c.Request.Context(), documentFilterFromQuery(c))
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"documents": docs})
}

type documentRequest struct {
	Title       string `json:"title" binding:"required"`
	Subject     string `json:"subject" binding:"required"`
	Semester    int    `json:"semester" binding:"required"`
	Type        string `json:"type" binding:"required"`
	FileURL     string `json:"fileUrl" binding:"required"`
	Description string `json:"description"`
}

func (s *Server) handleSubmitDocument(c *gin.Context) {
	var req documentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	doc, err := s.documentSvc.Submit(c.Request.Context(), currentUser(c), service.DocumentInput{
		Title:       req.Title,
		Subject:     req.Subject,
		Semester:    req.Semester,
		Type:        req.Type,
		FileURL:     req.FileURL,
		Description: req.Description,
	})
	if err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"document": doc})
}

func (s *Server) handleDownloadDocument(c *gin.Context) {
	doc, err := s.documentSvc.Download(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"fileUrl": doc.FileURL, "downloads": doc.Downloads})
}

func (s *Server) handleAdminListDocuments(c *gin.Context) {
	filter := documentFilterFromQuery(c)
	filter.Status = c.Query("status")
	docs, err := s.documentSvc.AdminList(c.Request.Context(), filter)
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"documents": docs})
}

type documentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (s *Server) handleSetDocumentStatus(c *gin.Context) {
	var req documentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	doc, err := s.documentSvc.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"document": doc})
}

func (s *Server) handleDeleteDocument(c *gin.Context) {
	if err := s.documentSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"status": "deleted"})
}
