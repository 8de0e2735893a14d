package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/oggyb/chat-archive/internal/apperr"
	"github.com/oggyb/chat-archive/internal/request"
	"github.com/oggyb/chat-archive/internal/response"
	"github.com/oggyb/chat-archive/internal/scheduler"
	"github.com/oggyb/chat-archive/internal/service"
)

// MessageHandler wires HTTP endpoints to the message service
// and the background stats scheduler.
type MessageHandler struct {
	msgSvc service.MessageService
	schSvc scheduler.SchedulerService
}

// NewMessageHandler constructs a new MessageHandler with its dependencies.
func NewMessageHandler(msgSvc service.MessageService, schSvc scheduler.SchedulerService) *MessageHandler {
	return &MessageHandler{
		msgSvc: msgSvc,
		schSvc: schSvc,
	}
}

// StoreMessage godoc
// @Summary     Archive a chat message
// @Description Stores one question/answer exchange for a user. The server assigns the ID and creation timestamp.
// @Tags        messages
// @Accept      json
// @Produce     json
// @Param       request body request.StoreMessageRequest true "Message to archive"
// @Success     201 {object} response.StoredMessageResponse
// @Failure     400 {object} response.JSONResponse
// @Failure     422 {object} response.JSONResponse
// @Failure     500 {object} response.JSONResponse
// @Router      /api/v1/messages [post]
func (h *MessageHandler) StoreMessage(w http.ResponseWriter, r *http.Request) {
	var req request.StoreMessageRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	msg, err := h.msgSvc.Store(r.Context(), req.UserID, req.Name, req.Question, req.Answer)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	payload := response.StoredMessagePayload{
		ID:        msg.ID.String(),
		CreatedAt: msg.CreatedAt,
	}
	response.RespondJSON(w, http.StatusCreated, payload)
}

// GetMessages godoc
// @Summary     Query messages by day or period
// @Description Returns archived messages for a single day (day=) or a date range (start=&end=). The two modes are mutually exclusive. Empty pages return 204 with pagination headers.
// @Tags        messages
// @Produce     json
// @Param       day       query string false "Single day (YYYY-MM-DD); cannot combine with start/end"
// @Param       start     query string false "Range start (YYYY-MM-DD, inclusive; requires end)"
// @Param       end       query string false "Range end (YYYY-MM-DD, inclusive; requires start)"
// @Param       page_size query int    false "Items per page [1,100]" default(50)
// @Param       page      query int    false "Zero-indexed page"      default(0)
// @Success     200 {object} response.MessagesPageResponse
// @Success     204 "No matching messages; pagination metadata in headers"
// @Failure     422 {object} response.JSONResponse
// @Failure     500 {object} response.JSONResponse
// @Router      /api/v1/messages [get]
func (h *MessageHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	q, err := request.ResolveMessagesQuery(request.QueryParams{
		Day:      qs.Get("day"),
		Start:    qs.Get("start"),
		End:      qs.Get("end"),
		PageSize: qs.Get("page_size"),
		Page:     qs.Get("page"),
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	var result *service.PageResult
	switch q.Mode {
	case request.ModeByDay:
		result, err = h.msgSvc.GetByDay(r.Context(), q.Day, q.Page)
	case request.ModeByPeriod:
		result, err = h.msgSvc.GetByPeriod(r.Context(), q.Start, q.End, q.Page)
	default:
		response.RespondError(w, http.StatusUnprocessableEntity, "unsupported query mode")
		return
	}
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondPage(w, response.NewMessagesPage(result.Items, result.Total, result.Page))
}

// GetUserMessages godoc
// @Summary     Get messages for a specific user
// @Description Returns the user's archived messages within a date range. Responses omit user_id and name. Empty pages return 204 with pagination headers.
// @Tags        users
// @Produce     json
// @Param       user_id   path  string true  "User identifier"
// @Param       start     query string true  "Range start (YYYY-MM-DD, inclusive)"
// @Param       end       query string true  "Range end (YYYY-MM-DD, inclusive)"
// @Param       page_size query int    false "Items per page [1,100]" default(50)
// @Param       page      query int    false "Zero-indexed page"      default(0)
// @Success     200 {object} response.MessagesPageResponse
// @Success     204 "No matching messages; pagination metadata in headers"
// @Failure     422 {object} response.JSONResponse
// @Failure     500 {object} response.JSONResponse
// @Router      /api/v1/users/{user_id}/messages [get]
func (h *MessageHandler) GetUserMessages(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	q, err := request.ResolveMessagesQuery(request.QueryParams{
		UserID:   r.PathValue("user_id"),
		Day:      qs.Get("day"),
		Start:    qs.Get("start"),
		End:      qs.Get("end"),
		PageSize: qs.Get("page_size"),
		Page:     qs.Get("page"),
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	result, err := h.msgSvc.GetByUser(r.Context(), q.UserID, q.Start, q.End, q.Page)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response.RespondPage(w, response.NewMessagesPage(result.Items, result.Total, result.Page))
}

// DeleteUser godoc
// @Summary     Delete all data for a user
// @Description Permanently removes every archived message for the user. Idempotent: deleting a user with no messages succeeds and reports zero.
// @Tags        users
// @Produce     json
// @Param       user_id path string true "User identifier"
// @Success     200 {object} response.DeletedUserResponse
// @Failure     422 {object} response.JSONResponse
// @Failure     500 {object} response.JSONResponse
// @Router      /api/v1/users/{user_id} [delete]
func (h *MessageHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")

	deleted, err := h.msgSvc.DeleteUser(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	payload := response.DeletedUserPayload{
		UserID:  userID,
		Deleted: deleted,
	}
	response.RespondJSON(w, http.StatusOK, payload)
}

// StartStopScheduler godoc
// @Summary     Control the stats refresher
// @Description Starts or stops the background daily-stats refresher based on the given action.
// @Tags        scheduler
// @Accept      json
// @Produce     json
// @Param       request body request.SchedulerRequest true "Scheduler action (start|stop)"
// @Success     200 {object} response.SchedulerControlResponse
// @Failure     400 {object} response.JSONResponse
// @Router      /scheduler [post]
func (h *MessageHandler) StartStopScheduler(w http.ResponseWriter, r *http.Request) {
	var req request.SchedulerRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	switch req.Action {
	case "start":
		if err := h.schSvc.Start(); err != nil {
			response.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		response.RespondJSON(w, http.StatusOK, response.SchedulerControlPayload{
			Message: "stats refresher started",
		})

	case "stop":
		if err := h.schSvc.Stop(); err != nil {
			response.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		response.RespondJSON(w, http.StatusOK, response.SchedulerControlPayload{
			Message: "stats refresher stopped",
		})

	default:
		response.RespondError(w, http.StatusBadRequest, "action must be 'start' or 'stop'")
	}
}

// respondServiceError maps service errors onto the HTTP contract:
// validation failures are reported precisely with 422, storage failures
// generically with 500.
func respondServiceError(w http.ResponseWriter, err error) {
	if apperr.IsValidation(err) {
		response.RespondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	log.Printf("[Handler] Storage failure: %v", err)
	response.RespondError(w, http.StatusInternalServerError, "storage operation failed")
}
