package api

import (
	"github.com/Aidin1998/contacts_manager/api/responses"
	"github.com/Aidin1998/contacts_manager/internal/contacts"
	"github.com/gin-gonic/gin"
)

const contactIDParam = "contact_id"

// listContacts returns a page of contacts, optionally filtered by name or email
// @Summary List contacts
// @Tags contacts
// @Produce json
// @Param limit query int false "Page size" minimum(1) maximum(100) default(10)
// @Param offset query int false "Rows to skip" minimum(0) default(0)
// @Param first_name query string false "First name contains"
// @Param last_name query string false "Last name contains"
// @Param email query string false "Email contains"
// @Success 200 {array} contacts.ContactResponse
// @Failure 422 {object} responses.ValidationErrorResponse
// @Router /api/contacts [get]
func (s *Server) listContacts(c *gin.Context) error {
	var filter contacts.ListFilter
	if err := bindQuery(c, &filter); err != nil {
		return err
	}
	items, err := s.contacts.List(c.Request.Context(), filter)
	if err != nil {
		return err
	}
	responses.OK(c, contacts.ToResponses(items))
	return nil
}

// @Summary Upcoming birthdays
// @Description Contacts whose birthday falls within the next days, soonest first
// @Tags contacts
// @Produce json
// @Param days query int false "Window in days" minimum(1) maximum(366) default(7)
// @Success 200 {array} contacts.ContactResponse
// @Failure 422 {object} responses.ValidationErrorResponse
// @Router /api/contacts/birthdays [get]
func (s *Server) upcomingBirthdays(c *gin.Context) error {
	var filter contacts.BirthdayFilter
	if err := bindQuery(c, &filter); err != nil {
		return err
	}
	items, err := s.contacts.UpcomingBirthdays(c.Request.Context(), filter.Days)
	if err != nil {
		return err
	}
	responses.OK(c, contacts.ToResponses(items))
	return nil
}

// @Summary Get contact
// @Tags contacts
// @Produce json
// @Param contact_id path int true "Contact ID"
// @Success 200 {object} contacts.ContactResponse
// @Failure 404 {object} responses.ResourceNotFoundErrorResponse
// @Failure 422 {object} responses.ValidationErrorResponse
// @Router /api/contacts/{contact_id} [get]
func (s *Server) getContact(c *gin.Context) error {
	id, err := pathID(c, contactIDParam)
	if err != nil {
		return err
	}
	contact, err := s.contacts.Get(c.Request.Context(), id)
	if err != nil {
		return err
	}
	responses.OK(c, contact.ToResponse())
	return nil
}

// @Summary Create contact
// @Tags contacts
// @Accept json
// @Produce json
// @Param request body contacts.ContactRequest true "Contact"
// @Success 201 {object} contacts.ContactResponse
// @Failure 409 {object} responses.ResourceAlreadyExistsErrorResponse
// @Failure 422 {object} responses.ValidationErrorResponse
// @Router /api/contacts [post]
func (s *Server) createContact(c *gin.Context) error {
	var req contacts.ContactRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	contact, err := s.contacts.Create(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	responses.Created(c, contact.ToResponse())
	return nil
}

// @Summary Update contact
// @Tags contacts
// @Accept json
// @Produce json
// @Param contact_id path int true "Contact ID"
// @Param request body contacts.ContactRequest true "Contact"
// @Success 200 {object} contacts.ContactResponse
// @Failure 404 {object} responses.ResourceNotFoundErrorResponse
// @Failure 409 {object} responses.ResourceAlreadyExistsErrorResponse
// @Failure 422 {object} responses.ValidationErrorResponse
// @Router /api/contacts/{contact_id} [put]
func (s *Server) updateContact(c *gin.Context) error {
	id, err := pathID(c, contactIDParam)
	if err != nil {
		return err
	}
	var req contacts.ContactRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	contact, err := s.contacts.Update(c.Request.Context(), id, &req)
	if err != nil {
		return err
	}
	responses.OK(c, contact.ToResponse())
	return nil
}

// deleteContact removes a contact and returns it as it was before deletion
// @Summary Delete contact
// @Tags contacts
// @Produce json
// @Param contact_id path int true "Contact ID"
// @Success 200 {object} contacts.ContactResponse
// @Failure 404 {object} responses.ResourceNotFoundErrorResponse
// @Failure 422 {object} responses.ValidationErrorResponse
// @Router /api/contacts/{contact_id} [delete]
func (s *Server) deleteContact(c *gin.Context) error {
	id, err := pathID(c, contactIDParam)
	if err != nil {
		return err
	}
	contact, err := s.contacts.Delete(c.Request.Context(), id)
	if err != nil {
		return err
	}
	responses.OK(c, contact.ToResponse())
	return nil
}
