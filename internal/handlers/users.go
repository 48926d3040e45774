package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shariqrahman/Products-Management/internal/auth"
	"github.com/shariqrahman/Products-Management/internal/middleware"
	"github.com/shariqrahman/Products-Management/internal/models"
	"github.com/shariqrahman/Products-Management/internal/services"
	"github.com/shariqrahman/Products-Management/internal/validation"
	"github.com/shariqrahman/Products-Management/pkg/utils"
)

// UserStore is the persistence contract the handlers depend on. Lookups
// return services.ErrUserNotFound when nothing matches.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByPhone(ctx context.Context, phone string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.User, error)
}

// UserHandler serves the four account operations.
type UserHandler struct {
	store    UserStore
	uploader services.Uploader
	tokens   *auth.TokenIssuer
}

func NewUserHandler(store UserStore, uploader services.Uploader, tokens *auth.TokenIssuer) *UserHandler {
	return &UserHandler{
		store:    store,
		uploader: uploader,
		tokens:   tokens,
	}
}

type loginData struct {
	UserID string `json:"userId"`
	Token  string `json:"token"`
}

// Register creates a new account from a multipart body carrying the profile
// fields and exactly one profile image. Checks run in a fixed order and the
// first failure wins.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	payload, file, err := parseUserRequest(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !payload.hasData() {
		respondError(w, http.StatusBadRequest, "please provide user body")
		return
	}
	if !payload.FirstName.Usable() {
		respondError(w, http.StatusBadRequest, "fname is required")
		return
	}
	if !payload.LastName.Usable() {
		respondError(w, http.StatusBadRequest, "lname is required")
		return
	}
	// Leftover of the old image-by-URL contract: the placeholder field may
	// be omitted, but if sent it must not be blank.
	if payload.ProfileImage.Blank() {
		respondError(w, http.StatusBadRequest, "profile image is required")
		return
	}
	if !payload.Email.Usable() {
		respondError(w, http.StatusBadRequest, "email is required")
		return
	}
	email := payload.Email.Value()
	if !validation.IsValidEmail(email) {
		respondError(w, http.StatusBadRequest, "Invalid Email")
		return
	}
	if _, err := h.store.FindByEmail(r.Context(), email); err == nil {
		respondError(w, http.StatusBadRequest, email+" is already in use. Please try another email Id.")
		return
	} else if !errors.Is(err, services.ErrUserNotFound) {
		h.internalError(w, err)
		return
	}
	if file == nil {
		respondError(w, http.StatusBadRequest, "Profile Image is required")
		return
	}
	if !payload.Phone.Usable() {
		respondError(w, http.StatusBadRequest, "phone number is required")
		return
	}
	phone := payload.Phone.Value()
	if !validation.IsValidPhone(phone) {
		respondError(w, http.StatusBadRequest, "Phone number must be a valid Indian number")
		return
	}
	if _, err := h.store.FindByPhone(r.Context(), phone); err == nil {
		respondError(w, http.StatusBadRequest, phone+" is already in use, Please try a new phone number")
		return
	} else if !errors.Is(err, services.ErrUserNotFound) {
		h.internalError(w, err)
		return
	}
	if !payload.Password.Usable() {
		respondError(w, http.StatusBadRequest, "password is required")
		return
	}
	password := payload.Password.Value()
	if !validation.IsValidPasswordLength(password) {
		respondError(w, http.StatusBadRequest, "Password length should be 8 to 15 characters")
		return
	}
	if !validation.IsValidPassword(password) {
		respondError(w, http.StatusBadRequest, "password must contain at least one uppercase letter, one lowercase letter, one digit and one symbol")
		return
	}

	address, msg := requiredAddress(payload.Address)
	if msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	if h.uploader == nil {
		respondError(w, http.StatusInternalServerError, "file upload service not available")
		return
	}
	imageURL, err := h.uploader.Upload(r.Context(), file)
	if err != nil {
		h.internalError(w, err)
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		h.internalError(w, err)
		return
	}

	user := &models.User{
		FirstName:    payload.FirstName.Value(),
		LastName:     payload.LastName.Value(),
		Email:        email,
		Phone:        phone,
		Password:     hash,
		ProfileImage: imageURL,
		Address:      address,
	}

	saved, err := h.store.Create(r.Context(), user)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateKey) {
			// Lost a race against a concurrent registration; the unique
			// index is the authoritative guard.
			respondError(w, http.StatusBadRequest, "email or phone already in use")
			return
		}
		h.internalError(w, err)
		return
	}

	respondOK(w, http.StatusCreated, "user created successfully", saved)
}

// Login verifies credentials and issues a bearer token valid for ten hours.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	payload, _, err := parseUserRequest(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !payload.hasData() {
		respondError(w, http.StatusBadRequest, "Please provide login details")
		return
	}
	if !payload.Email.Usable() {
		respondError(w, http.StatusBadRequest, "Email Id is required")
		return
	}
	if !payload.Password.Usable() {
		respondError(w, http.StatusBadRequest, "Password is required")
		return
	}
	// The plaintext shape is re-checked here so a malformed password never
	// reaches the store lookup.
	password := payload.Password.Value()
	if !validation.IsValidPasswordLength(password) {
		respondError(w, http.StatusBadRequest, "Password length should be 8 to 15 characters")
		return
	}
	if !validation.IsValidPassword(password) {
		respondError(w, http.StatusBadRequest, "password must contain at least one uppercase letter, one lowercase letter, one digit and one symbol")
		return
	}

	user, err := h.store.FindByEmail(r.Context(), payload.Email.Value())
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondError(w, http.StatusUnauthorized, "Email id is incorrect")
			return
		}
		h.internalError(w, err)
		return
	}

	if !utils.CheckPassword(password, user.Password) {
		respondError(w, http.StatusUnauthorized, "Password is incorrect")
		return
	}

	token, err := h.tokens.Issue(user.ID.Hex())
	if err != nil {
		h.internalError(w, err)
		return
	}

	respondOK(w, http.StatusOK, "user login successful", loginData{
		UserID: user.ID.Hex(),
		Token:  token,
	})
}

// GetProfile returns the caller's own profile.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	callerID := middleware.CallerID(r.Context())

	if !validation.IsValidObjectID(userID) {
		respondError(w, http.StatusBadRequest, "Invalid userId in params")
		return
	}

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid userId in params")
		return
	}

	user, err := h.store.FindByID(r.Context(), oid)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondError(w, http.StatusBadRequest, "User doesn't exist by "+userID)
			return
		}
		h.internalError(w, err)
		return
	}

	if user.ID.Hex() != callerID {
		respondError(w, http.StatusForbidden, "Unauthorized access")
		return
	}

	respondOK(w, http.StatusOK, "Profile successfully found", user)
}

// UpdateProfile applies a partial update to the caller's own profile. Fields
// that were never sent keep their stored values; fields sent empty are
// rejected. Address leaves merge individually.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	callerID := middleware.CallerID(r.Context())

	if !validation.IsValidObjectID(userID) {
		respondError(w, http.StatusBadRequest, userID+" is not a valid userId")
		return
	}
	if !validation.IsValidObjectID(callerID) {
		respondError(w, http.StatusBadRequest, "Unauthorized access!")
		return
	}
	// Ownership is decided before the record is loaded and re-checked after.
	if userID != callerID {
		respondError(w, http.StatusForbidden, "Unauthorized access!")
		return
	}

	payload, file, err := parseUserRequest(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// The image upload deliberately precedes the empty-body check: an
	// update that only replaces the picture is a valid update.
	if file != nil {
		if h.uploader == nil {
			respondError(w, http.StatusInternalServerError, "file upload service not available")
			return
		}
		imageURL, err := h.uploader.Upload(r.Context(), file)
		if err != nil {
			h.internalError(w, err)
			return
		}
		payload.ProfileImage = validation.NewField(imageURL)
	}

	if !payload.hasData() {
		respondError(w, http.StatusBadRequest, "Please, provide some data to update")
		return
	}

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		respondError(w, http.StatusBadRequest, userID+" is not a valid userId")
		return
	}

	user, err := h.store.FindByID(r.Context(), oid)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondError(w, http.StatusBadRequest, "User doesn't exist by "+userID)
			return
		}
		h.internalError(w, err)
		return
	}
	if user.ID.Hex() != callerID {
		respondError(w, http.StatusUnauthorized, "Unauthorized access!")
		return
	}

	set := bson.M{}

	if payload.FirstName.Present() {
		if !payload.FirstName.Usable() {
			respondError(w, http.StatusBadRequest, "fname is Required")
			return
		}
		set["fname"] = payload.FirstName.Value()
	}
	if payload.LastName.Present() {
		if !payload.LastName.Usable() {
			respondError(w, http.StatusBadRequest, "lname is Required")
			return
		}
		set["lname"] = payload.LastName.Value()
	}

	if payload.Email.Present() {
		if !payload.Email.Usable() {
			respondError(w, http.StatusBadRequest, "email is Required")
			return
		}
		email := payload.Email.Value()
		if !validation.IsValidEmail(email) {
			respondError(w, http.StatusBadRequest, "Email should be a valid email address")
			return
		}
		existing, err := h.store.FindByEmail(r.Context(), email)
		if err != nil && !errors.Is(err, services.ErrUserNotFound) {
			h.internalError(w, err)
			return
		}
		if existing != nil && existing.ID != oid {
			respondError(w, http.StatusBadRequest, email+" is already registered")
			return
		}
		set["email"] = email
	}

	if payload.Phone.Present() {
		if !payload.Phone.Usable() {
			respondError(w, http.StatusBadRequest, "phone number is Required")
			return
		}
		phone := payload.Phone.Value()
		if !validation.IsValidPhone(phone) {
			respondError(w, http.StatusBadRequest, "Please enter a valid Indian phone number")
			return
		}
		existing, err := h.store.FindByPhone(r.Context(), phone)
		if err != nil && !errors.Is(err, services.ErrUserNotFound) {
			h.internalError(w, err)
			return
		}
		if existing != nil && existing.ID != oid {
			respondError(w, http.StatusBadRequest, phone+" is already registered")
			return
		}
		set["phone"] = phone
	}

	if payload.Password.Present() {
		if !payload.Password.Usable() {
			respondError(w, http.StatusBadRequest, "password is Required")
			return
		}
		password := payload.Password.Value()
		if !validation.IsValidPasswordLength(password) {
			respondError(w, http.StatusBadRequest, "Password length should be 8 to 15 characters")
			return
		}
		if !validation.IsValidPassword(password) {
			respondError(w, http.StatusBadRequest, "password must contain at least one uppercase letter, one lowercase letter, one digit and one symbol")
			return
		}
		hash, err := utils.HashPassword(password)
		if err != nil {
			h.internalError(w, err)
			return
		}
		set["password"] = hash
	}

	if payload.ProfileImage.Usable() {
		set["profileImage"] = payload.ProfileImage.Value()
	}

	if payload.Address.present {
		entries, msg := addressUpdates(payload.Address)
		if msg != "" {
			respondError(w, http.StatusBadRequest, msg)
			return
		}
		for key, value := range entries {
			set[key] = value
		}
	}

	updated, err := h.store.Update(r.Context(), oid, set)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondError(w, http.StatusBadRequest, "User doesn't exist by "+userID)
			return
		}
		if errors.Is(err, services.ErrDuplicateKey) {
			respondError(w, http.StatusBadRequest, "email or phone already in use")
			return
		}
		h.internalError(w, err)
		return
	}

	respondOK(w, http.StatusOK, "user profile updated", updated)
}

func (h *UserHandler) internalError(w http.ResponseWriter, err error) {
	log.Printf("ERROR: %v", err)
	respondError(w, http.StatusInternalServerError, err.Error())
}
