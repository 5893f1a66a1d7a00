package response

import "barber-booking/internal/usecase"

type LoginResponse struct {
	AccessToken string             `json:"access_token"`
	Admin       *usecase.AdminView `json:"admin"`
}
