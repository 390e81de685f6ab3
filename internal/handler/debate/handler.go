package debate

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/minsplit/minsplit/backend/internal/model/debate"
	debateService "github.com/minsplit/minsplit/backend/internal/service/debate"
	"github.com/minsplit/minsplit/backend/internal/store"
	"github.com/minsplit/minsplit/backend/pkg/utils"
)

// Handler exposes the debate and conversation endpoints.
type Handler struct {
	debateSvc *debateService.Service
}

// New creates the debate handler.
func New(debateSvc *debateService.Service) *Handler {
	return &Handler{debateSvc: debateSvc}
}

// RegisterRoutes mounts the debate routes on the API router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/debate", h.handleCreateDebate)
	r.Get("/debate/stream", h.handleStreamDebate)
	r.Get("/conversations", h.handleListConversations)
	r.Get("/conversations/{conversationID}", h.handleGetConversation)
	r.Delete("/conversations/{conversationID}", h.handleDeleteConversation)
}

type debateResponse struct {
	ConversationID string        `json:"conversation_id"`
	Situation      string        `json:"situation"`
	Messages       []debate.Turn `json:"messages"`
	FinalDecision  string        `json:"final_decision"`
	Tags           []string      `json:"tags"`
}

func (h *Handler) handleCreateDebate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Situation string `json:"situation"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	conv, err := h.debateSvc.CreateDebate(r.Context(), payload.Situation)
	if err != nil {
		if errors.Is(err, debateService.ErrSituationRequired) {
			utils.RespondError(w, http.StatusBadRequest, "situation is required")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "failed to create debate")
		return
	}

	utils.RespondJSON(w, http.StatusCreated, debateResponse{
		ConversationID: conv.ID,
		Situation:      conv.Situation,
		Messages:       conv.Messages,
		FinalDecision:  conv.FinalDecision,
		Tags:           conv.Tags,
	})
}

// handleStreamDebate streams a generated debate turn by turn over SSE without
// persisting it. The POST endpoint remains the only writer.
func (h *Handler) handleStreamDebate(w http.ResponseWriter, r *http.Request) {
	situationText := r.URL.Query().Get("situation")
	if situationText == "" {
		utils.RespondError(w, http.StatusBadRequest, "situation query parameter is required")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	messages, finalDecision, tags := debateService.Generate(situationText)

	utils.SetupSSEHeaders(w)
	for _, turn := range messages {
		select {
		case <-r.Context().Done():
			return
		default:
		}
		utils.SendSSEEvent(w, flusher, "turn", turn)
	}
	utils.SendSSEEvent(w, flusher, "done", map[string]interface{}{
		"final_decision": finalDecision,
		"tags":           tags,
	})
}

func (h *Handler) handleListConversations(w http.ResponseWriter, r *http.Request) {
	limit := debateService.DefaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	items, err := h.debateSvc.ListConversations(r.Context(), limit)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to list conversations")
		return
	}
	if items == nil {
		items = []debate.Summary{}
	}

	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

func (h *Handler) handleGetConversation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "conversationID")

	conv, err := h.debateSvc.GetConversation(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "conversation not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "failed to fetch conversation")
		return
	}

	utils.RespondJSON(w, http.StatusOK, conv)
}

func (h *Handler) handleDeleteConversation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "conversationID")

	if err := h.debateSvc.DeleteConversation(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "conversation not found")
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "failed to delete conversation")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
