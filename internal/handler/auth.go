package handler

import (
	"net/http"

	"github.com/osse101/Armory_Go/internal/logger"
	"github.com/osse101/Armory_Go/internal/user"
)

// SignUpRequest is the account registration body
type SignUpRequest struct {
	UserID   string `json:"userId" validate:"required,loginid,max=30"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Name     string `json:"name" validate:"required,max=30"`
	Age      int    `json:"age" validate:"gte=0,lte=150"`
}

// SignInRequest is the credential body
type SignInRequest struct {
	UserID   string `json:"userId" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest carries a refresh token
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// SignInResponse is returned on successful sign-in
type SignInResponse struct {
	Message      string `json:"message"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// HandleSignUp registers an account
// @Summary Sign up
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignUpRequest true "Account"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/auth/sign-up [post]
func HandleSignUp(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignUpRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Sign up"); err != nil {
			return
		}

		u, err := svc.SignUp(r.Context(), user.SignUpInput{
			LoginID:  req.UserID,
			Password: req.Password,
			Name:     req.Name,
			Age:      req.Age,
		})
		if err != nil {
			respondServiceError(w, r, "Sign up", err)
			return
		}

		logger.FromContext(r.Context()).Info(MsgSignedUp, "user_id", u.ID)
		respondMessage(w, http.StatusCreated, MsgSignedUp)
	}
}

// HandleSignIn exchanges credentials for a token pair
// @Summary Sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignInRequest true "Credentials"
// @Success 200 {object} SignInResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/auth/sign-in [post]
func HandleSignIn(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignInRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Sign in"); err != nil {
			return
		}

		tokens, err := svc.SignIn(r.Context(), req.UserID, req.Password)
		if err != nil {
			respondServiceError(w, r, "Sign in", err)
			return
		}

		respondJSON(w, http.StatusOK, SignInResponse{
			Message:      MsgSignedIn,
			AccessToken:  tokens.AccessToken,
			RefreshToken: tokens.RefreshToken,
		})
	}
}

// HandleRefreshToken issues a new access token for a stored refresh token
// @Summary Refresh access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh token"
// @Success 200 {object} user.TokenPair
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/auth/token [post]
func HandleRefreshToken(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RefreshRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Refresh token"); err != nil {
			return
		}

		tokens, err := svc.Refresh(r.Context(), req.RefreshToken)
		if err != nil {
			respondServiceError(w, r, "Refresh token", err)
			return
		}

		respondJSON(w, http.StatusOK, tokens)
	}
}
