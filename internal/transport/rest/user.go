package rest

import (
	"net/http"

	usersvc "github.com/molcom/timeclock-backend/internal/service/user"
)

type createUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	IsAdmin  bool   `json:"isAdmin"`
}

type updateUserRequest struct {
	Username *string `json:"username"`
	FullName *string `json:"fullName"`
	IsAdmin  *bool   `json:"isAdmin"`
}

type resetPasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

func (h *Handlers) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.Users.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserDTOs(users))
}

func (h *Handlers) createUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	user, err := h.svc.Users.CreateUser(r.Context(), usersvc.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		FullName: req.FullName,
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserDTO(user))
}

func (h *Handlers) updateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	user, err := h.svc.Users.UpdateUser(r.Context(), usersvc.UpdateUserInput{
		UserID:   userID,
		Username: req.Username,
		FullName: req.FullName,
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserDTO(user))
}

func (h *Handlers) resetPassword(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req resetPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	err = h.svc.Users.ResetPassword(r.Context(), usersvc.ResetPasswordInput{
		UserID:      userID,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Password reset"})
}

func (h *Handlers) deleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.svc.Users.DeleteUser(r.Context(), usersvc.DeleteUserInput{UserID: userID}); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "User deleted"})
}
