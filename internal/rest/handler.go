package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/click2025-space/clickers-workspace/internal/config"
	api "github.com/click2025-space/clickers-workspace/internal/generated"
	"github.com/click2025-space/clickers-workspace/internal/model"
	"github.com/click2025-space/clickers-workspace/internal/pkg/tx"
)

type Handler struct {
	repository   DBRepo
	feedClient   FeedPublisher
	validator    Validator
	jwtGenerator JWTGenerator
}

func New(
	repo DBRepo,
	feedClient FeedPublisher,
	validator Validator,
	jwtGenerator JWTGenerator,
) *Handler {
	return &Handler{
		repository:   repo,
		feedClient:   feedClient,
		validator:    validator,
		jwtGenerator: jwtGenerator,
	}
}

func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetMessages")

	messages, err := h.repository.GetAllMessages(r.Context())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch messages: %v", err))
		h.writeError(w, fmt.Sprintf("failed to fetch messages: %v", err), http.StatusInternalServerError)
		return
	}

	apiMessages := make([]api.Message, len(*messages))
	for i, msg := range *messages {
		apiMessages[i] = toAPIMessage(msg)
	}

	response := api.GetMessagesResponse{
		Messages: apiMessages,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendMessage")

	var req api.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	senderID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get sender ID")
		h.writeError(w, "failed to get sender ID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateSendMessage(&req); err != nil {
		logger.Error(fmt.Sprintf("message validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("message validation failed: %v", err), http.StatusBadRequest)
		return
	}

	message := model.Message{
		ID:       uuid.New().String(),
		SenderID: senderID,
		Channel:  req.Channel,
		Body:     model.ParseBody(req.Content),
		SentAt:   time.Now().UTC(),
	}

	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		if err := h.repository.SaveMessage(ctx, &message); err != nil {
			logger.Error(fmt.Sprintf("failed to save message: %v", err))
			return fmt.Errorf("failed to save message: %v", err)
		}
		return nil
	})

	if err != nil {
		logger.Error(fmt.Sprintf("failed to send message transaction: %v", err))
		h.writeError(w, fmt.Sprintf("failed to send message: %v", err), http.StatusInternalServerError)
		return
	}

	err = h.feedClient.Publish(r.Context(), model.FeedChannel, model.ChangeEvent{
		Kind:      model.ChangeKindInsert,
		Table:     "messages",
		MessageID: message.ID,
	})
	if err != nil {
		// Connected clients fall back to the poll; the write itself stands.
		logger.Error(fmt.Sprintf("failed to publish change event: %v", err))
	}

	response := api.SendMessageResponse{
		Message: toAPIMessage(message),
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request, messageId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteMessage")

	requesterID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get requester ID")
		h.writeError(w, "failed to get requester ID", http.StatusInternalServerError)
		return
	}

	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		return h.repository.DeleteMessage(ctx, messageId, requesterID)
	})

	if errors.Is(err, model.ErrMessageNotFound) {
		logger.Error(fmt.Sprintf("message %s not found", messageId))
		h.writeError(w, "message not found", http.StatusNotFound)
		return
	}

	if errors.Is(err, model.ErrNotMessageSender) {
		logger.Error(fmt.Sprintf("user %s is not the sender of message %s", requesterID, messageId))
		h.writeError(w, "only the sender can delete a message", http.StatusForbidden)
		return
	}

	if err != nil {
		logger.Error(fmt.Sprintf("failed to delete message: %v", err))
		h.writeError(w, fmt.Sprintf("failed to delete message: %v", err), http.StatusInternalServerError)
		return
	}

	err = h.feedClient.Publish(r.Context(), model.FeedChannel, model.ChangeEvent{
		Kind:      model.ChangeKindDelete,
		Table:     "messages",
		MessageID: messageId,
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to publish change event: %v", err))
	}

	h.writeJSON(w, api.DeleteMessageResponse{Success: true}, http.StatusOK)
}

func (h *Handler) GetMembers(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetMembers")

	members, err := h.repository.GetMembers(r.Context())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get members: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get members: %v", err), http.StatusInternalServerError)
		return
	}

	apiMembers := make([]api.Participant, len(*members))
	for i, member := range *members {
		var avatarURL *string
		if member.AvatarURL != "" {
			url := member.AvatarURL
			avatarURL = &url
		}

		apiMembers[i] = api.Participant{
			Id:        member.ID,
			Name:      member.Name,
			Role:      member.Role,
			AvatarUrl: avatarURL,
			Status:    member.Status,
		}
	}

	response := api.GetMembersResponse{
		Members: apiMembers,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetFeedConnectToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetFeedConnectToken")

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateConnectToken(userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate connect token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate connect token: %v", err), http.StatusInternalServerError)
		return
	}

	response := api.GetFeedConnectTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetFeedSubscribeToken(w http.ResponseWriter, r *http.Request, channel string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetFeedSubscribeToken")

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateSubscribeToken(userID, channel)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate subscribe token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate subscribe token: %v", err), http.StatusInternalServerError)
		return
	}

	response := api.GetFeedSubscribeTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Channel:   channel,
	}

	h.writeJSON(w, response, http.StatusOK)
}

// ----------------------------- helpers -----------------------------

func toAPIMessage(msg model.Message) api.Message {
	return api.Message{
		Id:       msg.ID,
		SenderId: msg.SenderID,
		Channel:  msg.Channel,
		Content:  model.EncodeBody(msg.Body),
		SentAt:   msg.SentAt.Format(time.RFC3339),
		Seq:      msg.Seq,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
