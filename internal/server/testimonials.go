package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleListTestimonials(c *gin.Context) {
	out, err := s.testimonialSvc.ListApproved(c.Request.Context())
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"testimonials": out})
}

type testimonialRequest struct {
	Text   string `json:"text" binding:"required"`
	Rating int    `json:"rating" binding:"required"`
}

func (s *Server) handleSubmitTestimonial(c *gin.Context) {
	var req testimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	t, err := s.testimonialSvc.Submit(c.Request.Context(), currentUser(c), req.Text, req.Rating)
	if err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"testimonial": t})
}

func (s *Server) handleAdminListTestimonials(c *gin.Context) {
	out, err := s.testimonialSvc.AdminList(c.Request.Context())
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"testimonials": out})
}

func (s *Server) handleApproveTestimonial(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	t, err := s.testimonialSvc.Approve(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"testimonial": t})
}

func (s *Server) handleDeleteTestimonial(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := s.testimonialSvc.Delete(c.Request.Context(), id); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"status": "deleted"})
}
