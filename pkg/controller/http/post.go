package http

import (
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/postwave/postwave/pkg/domain/model"
	"github.com/postwave/postwave/pkg/domain/types"
	"github.com/postwave/postwave/pkg/usecase"
)

const (
	// multipartMemory is the part of a multipart body kept in memory;
	// the rest spills to temporary files
	multipartMemory = 8 << 20

	// formOverhead is the allowance for non-file fields of a submission
	formOverhead = 1 << 20
)

// PostHandler handles posts, comments and feed listings
type PostHandler struct {
	posts          usecase.PostUseCase
	comments       usecase.CommentUseCase
	feed           usecase.FeedUseCase
	maxUploadBytes int64
}

// NewPostHandler creates a new post handler. maxUploadBytes bounds a single
// image and is used to cap the request body.
func NewPostHandler(posts usecase.PostUseCase, comments usecase.CommentUseCase, feed usecase.FeedUseCase, maxUploadBytes int64) *PostHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = usecase.DefaultMaxUploadBytes
	}
	return &PostHandler{
		posts:          posts,
		comments:       comments,
		feed:           feed,
		maxUploadBytes: maxUploadBytes,
	}
}

type createPostRequest struct {
	Content             string           `json:"content"`
	Source              types.PostSource `json:"source"`
	GeneratedFromPrompt string           `json:"generated_from_prompt"`
	ModelName           string           `json:"model_name"`
}

type addCommentRequest struct {
	Content string `json:"content"`
}

// HandleCreatePost accepts a JSON body or a multipart form whose "images"
// parts carry the attached images
func (h *PostHandler) HandleCreatePost(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, int64(model.MaxImagesPerPost)*h.maxUploadBytes+formOverhead)

	var (
		input usecase.CreatePostInput
		err   error
	)
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		input, err = h.parseMultipartPost(r)
	} else {
		var req createPostRequest
		if err = decodeJSON(r, &req); err == nil {
			input = usecase.CreatePostInput{
				Content:             req.Content,
				Source:              req.Source,
				GeneratedFromPrompt: req.GeneratedFromPrompt,
				ModelName:           req.ModelName,
			}
		}
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	item, err := h.posts.CreatePost(r.Context(), viewerID(r.Context()), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, item)
}

func (h *PostHandler) parseMultipartPost(r *http.Request) (usecase.CreatePostInput, error) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return usecase.CreatePostInput{}, goerr.New("invalid multipart body",
			goerr.T(model.ErrTagValidation),
			goerr.V("cause", err.Error()))
	}

	form := r.MultipartForm
	input := usecase.CreatePostInput{
		Content:             formValue(form, "content"),
		Source:              types.PostSource(formValue(form, "source")),
		GeneratedFromPrompt: formValue(form, "generated_from_prompt"),
		ModelName:           formValue(form, "model_name"),
	}

	files := form.File["images"]
	if len(files) > model.MaxImagesPerPost {
		return usecase.CreatePostInput{}, goerr.New("too many images",
			goerr.T(model.ErrTagValidation),
			goerr.V("field", "images"),
			goerr.V("count", len(files)))
	}
	for i, fh := range files {
		upload, err := h.readUpload(fh)
		if err != nil {
			return usecase.CreatePostInput{}, goerr.Wrap(err, "failed to read image", goerr.V("index", i))
		}
		input.Images = append(input.Images, upload)
	}

	return input, nil
}

// readUpload reads one file part. The content type is always sniffed from
// the data; the type declared by the client is ignored.
func (h *PostHandler) readUpload(fh *multipart.FileHeader) (model.ImageUpload, error) {
	if fh.Size > h.maxUploadBytes {
		return model.ImageUpload{}, goerr.New("image is too large",
			goerr.T(model.ErrTagValidation),
			goerr.V("field", "images"),
			goerr.V("size", fh.Size),
			goerr.V("max", h.maxUploadBytes))
	}

	f, err := fh.Open()
	if err != nil {
		return model.ImageUpload{}, goerr.Wrap(err, "failed to open image part")
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxUploadBytes+1))
	if err != nil {
		return model.ImageUpload{}, goerr.Wrap(err, "failed to read image part")
	}

	return model.ImageUpload{
		Filename:    fh.Filename,
		ContentType: http.DetectContentType(data),
		Data:        data,
	}, nil
}

func formValue(form *multipart.Form, key string) string {
	if values := form.Value[key]; len(values) > 0 {
		return strings.TrimSpace(values[0])
	}
	return ""
}

// HandleGetPost returns a single post
func (h *PostHandler) HandleGetPost(w http.ResponseWriter, r *http.Request) {
	item, err := h.posts.GetPost(r.Context(), viewerID(r.Context()), postIDParam(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, item)
}

// HandleDeletePost deletes a post of the caller
func (h *PostHandler) HandleDeletePost(w http.ResponseWriter, r *http.Request) {
	if err := h.posts.DeletePost(r.Context(), viewerID(r.Context()), postIDParam(r)); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleLike likes a post
func (h *PostHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	if err := h.posts.LikePost(r.Context(), viewerID(r.Context()), postIDParam(r)); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleUnlike removes the caller's like
func (h *PostHandler) HandleUnlike(w http.ResponseWriter, r *http.Request) {
	if err := h.posts.UnlikePost(r.Context(), viewerID(r.Context()), postIDParam(r)); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleAddComment adds a comment to a post
func (h *PostHandler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	var req addCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	comment, err := h.comments.AddComment(r.Context(), viewerID(r.Context()), postIDParam(r), req.Content)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, comment)
}

// HandleListComments lists the published comments of a post
func (h *PostHandler) HandleListComments(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pageParams(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	comments, err := h.comments.ListComments(r.Context(), postIDParam(r), limit, offset)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, comments)
}

// HandleFeed lists all published posts
func (h *PostHandler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	h.listPosts(w, r, func(limit, offset int) ([]*model.FeedItem, error) {
		return h.feed.PublicFeed(r.Context(), viewerID(r.Context()), limit, offset)
	})
}

// HandleUserPosts lists the published posts of a user
func (h *PostHandler) HandleUserPosts(w http.ResponseWriter, r *http.Request) {
	userID := types.UserID(chi.URLParam(r, "userID"))
	h.listPosts(w, r, func(limit, offset int) ([]*model.FeedItem, error) {
		return h.feed.UserPosts(r.Context(), viewerID(r.Context()), userID, limit, offset)
	})
}

// HandleMyPosts lists the published posts of the caller
func (h *PostHandler) HandleMyPosts(w http.ResponseWriter, r *http.Request) {
	h.listPosts(w, r, func(limit, offset int) ([]*model.FeedItem, error) {
		return h.feed.MyPosts(r.Context(), viewerID(r.Context()), limit, offset)
	})
}

// HandleHashtagPosts lists the published posts carrying a hashtag
func (h *PostHandler) HandleHashtagPosts(w http.ResponseWriter, r *http.Request) {
	tag := chi.URLParam(r, "tag")
	h.listPosts(w, r, func(limit, offset int) ([]*model.FeedItem, error) {
		return h.feed.HashtagPosts(r.Context(), viewerID(r.Context()), tag, limit, offset)
	})
}

// HandleTrendingHashtags lists the most used hashtags
func (h *PostHandler) HandleTrendingHashtags(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		writeError(w, r, err)
		return
	}

	trending, err := h.feed.TrendingHashtags(r.Context(), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, trending)
}

func (h *PostHandler) listPosts(w http.ResponseWriter, r *http.Request, list func(limit, offset int) ([]*model.FeedItem, error)) {
	limit, offset, err := pageParams(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	items, err := list(limit, offset)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, items)
}

func postIDParam(r *http.Request) types.PostID {
	return types.PostID(chi.URLParam(r, "postID"))
}
