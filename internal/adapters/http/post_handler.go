package http

import (
	"errors"
	"net/http"

	"inkwell/internal/adapters/http/request"
	"inkwell/internal/adapters/http/response"
	"inkwell/internal/adapters/http/validator"
	"inkwell/internal/domain"
	"inkwell/internal/logger"

	"github.com/google/uuid"
)

type createPostResponse struct {
	ID uuid.UUID `json:"id"`
}

type postResponse struct {
	Post *domain.Post `json:"post"`
}

type postsResponse struct {
	Posts []*domain.Post `json:"posts"`
}

type PostHandler struct {
	svc domain.PostService
	log logger.Logger

	decoder   request.RequestDecoder
	writer    response.ResponseWriter
	validator validator.Validator
}

func NewPostHandler(
	svc domain.PostService,
	log logger.Logger,
	d request.RequestDecoder,
	w response.ResponseWriter,
	v validator.Validator,
) *PostHandler {
	return &PostHandler{
		svc:       svc,
		log:       log,
		decoder:   d,
		writer:    w,
		validator: v,
	}
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request, identity domain.Identity) {
	defer r.Body.Close()

	var req domain.CreatePostRequest
	if err := h.decoder.Decode(r, &req); err != nil {
		h.writer.WriteError(w, http.StatusBadRequest, response.MsgInvalidInput)
		return
	}

	if errs := h.validator.Validate(&req); len(errs) > 0 {
		h.writer.WriteValidationError(w, errs)
		return
	}

	post, err := h.svc.Create(r.Context(), identity, req)
	if err != nil {
		h.log.Error("post: create failed", "author_id", identity.UserID.String(), "error", err)
		h.writer.WriteError(w, http.StatusInternalServerError, "failed to create post")
		return
	}

	h.writer.Write(w, http.StatusOK, &createPostResponse{ID: post.ID})
}

func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request, identity domain.Identity) {
	defer r.Body.Close()

	var req domain.UpdatePostRequest
	if err := h.decoder.Decode(r, &req); err != nil {
		h.writer.WriteError(w, http.StatusBadRequest, response.MsgInvalidInput)
		return
	}

	if errs := h.validator.Validate(&req); len(errs) > 0 {
		h.writer.WriteValidationError(w, errs)
		return
	}

	post, err := h.svc.Update(r.Context(), identity, req)
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			h.writer.WriteError(w, http.StatusForbidden, "post not found")
			return
		}

		h.log.Error("post: update failed", "post_id", req.ID, "error", err)
		h.writer.WriteError(w, http.StatusInternalServerError, "failed to update post")
		return
	}

	h.writer.Write(w, http.StatusOK, &postResponse{Post: post})
}

// Get answers {"post": null} for unknown or malformed ids.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	postID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.writer.Write(w, http.StatusOK, &postResponse{})
		return
	}

	post, err := h.svc.GetByID(r.Context(), postID)
	if err != nil {
		h.log.Error("post: get failed", "post_id", postID.String(), "error", err)
		h.writer.WriteError(w, http.StatusInternalServerError, "failed to get post")
		return
	}

	h.writer.Write(w, http.StatusOK, &postResponse{Post: post})
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.ListAll(r.Context())
	if err != nil {
		h.log.Error("post: list failed", "error", err)
		h.writer.WriteError(w, http.StatusInternalServerError, "failed to list posts")
		return
	}

	h.writer.Write(w, http.StatusOK, &postsResponse{Posts: posts})
}
