package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/commands"
	"workforce/backend/internal/pkg/config"
	"workforce/backend/internal/repository/postgres/account"
	"workforce/backend/internal/service"
)

const (
	verifyTokenTTL = 24 * time.Hour
	resetTokenTTL  = time.Hour
)

type Controller struct {
	account Account
	mailer  service.Mailer
	cfg     *config.Config
}

func NewController(account Account, mailer service.Mailer, cfg *config.Config) *Controller {
	return &Controller{account: account, mailer: mailer, cfg: cfg}
}

func (uc Controller) SignIn(c *web.Context) error {
	var data account.SignInRequest

	err := c.BindFunc(&data, "EmployeeID", "Password")
	if err != nil {
		return c.RespondError(err)
	}

	detail, err := uc.account.GetByEmployeeID(c.Ctx, data.EmployeeID)
	if err != nil {
		return c.RespondError(err)
	}

	if detail.Password == nil {
		return c.RespondError(&web.Error{
			Err:    errors.New("account not found"),
			Status: http.StatusNotFound,
		})
	}

	if err = bcrypt.CompareHashAndPassword([]byte(*detail.Password), []byte(data.Password)); err != nil {
		return c.RespondError(web.NewRequestError(errors.New(fmt.Sprintf("incorrect password. error: %v", err)), http.StatusBadRequest))
	}

	if detail.Archived != nil && *detail.Archived {
		return c.RespondError(web.NewRequestError(errors.New("account is archived"), http.StatusUnauthorized))
	}
	if detail.Verified == nil || !*detail.Verified {
		return c.RespondError(web.NewRequestError(errors.New("email is not verified"), http.StatusUnauthorized))
	}

	accessToken, refreshToken, err := commands.GenToken(commands.AuthClaims{
		ID:   detail.ID,
		Role: *detail.Role,
	}, uc.cfg.PrivateKeyPath)

	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"status": true,
		"data": map[string]string{
			"access_token":  accessToken,
			"refresh_token": refreshToken,
		},
		"error": nil,
	}, http.StatusOK)
}

func (uc Controller) RefreshToken(c *web.Context) error {
	var data account.RefreshTokenRequest

	err := c.BindFunc(&data, "AccessToken", "RefreshToken")
	if err != nil {
		return c.RespondError(err)
	}

	_, refreshTokenClaims, err := commands.VerifyTokens(data.AccessToken, data.RefreshToken, uc.cfg.PrivateKeyPath)
	if err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusUnauthorized))
	}

	// The account may have been archived since the pair was issued.
	detail, err := uc.account.GetById(c.Ctx, refreshTokenClaims.UserId)
	if err != nil {
		return c.RespondError(err)
	}
	if detail.Archived != nil && *detail.Archived {
		return c.RespondError(web.NewRequestError(errors.New("account is archived"), http.StatusUnauthorized))
	}

	accessToken, refreshToken, err := commands.GenToken(commands.AuthClaims{
		ID:   refreshTokenClaims.UserId,
		Role: refreshTokenClaims.Role,
	}, uc.cfg.PrivateKeyPath)
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.Wrap(err, "generating new tokens"), http.StatusInternalServerError))
	}

	return c.Respond(map[string]interface{}{
		"status": true,
		"data": map[string]string{
			"access_token":  accessToken,
			"refresh_token": refreshToken,
		},
		"error": nil,
	}, http.StatusOK)
}

// Register creates an unverified employee account and mails a verification
// link. The account cannot sign in before the link is used.
func (uc Controller) Register(c *web.Context) error {
	var request account.RegisterRequest

	if err := c.BindFunc(&request, "EmployeeID", "Password", "FirstName", "LastName", "Email"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.account.Register(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	if err := uc.sendVerification(c, response.ID, *request.Email); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusCreated)
}

func (uc Controller) VerifyEmail(c *web.Context) error {
	var request account.VerifyEmailRequest

	if err := c.BindFunc(&request, "Token"); err != nil {
		return c.RespondError(err)
	}

	accountID, err := commands.VerifyActionToken(request.Token, commands.PurposeVerifyEmail, uc.cfg.PrivateKeyPath)
	if err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusBadRequest))
	}

	if err := uc.account.SetVerified(c.Ctx, accountID); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "email verified",
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) ResendVerification(c *web.Context) error {
	var request account.ResendVerificationRequest

	if err := c.BindFunc(&request, "Email"); err != nil {
		return c.RespondError(err)
	}

	detail, err := uc.account.GetByEmail(c.Ctx, request.Email)
	if err != nil {
		return c.RespondError(err)
	}
	if detail.Verified != nil && *detail.Verified {
		return c.RespondError(web.NewRequestError(errors.New("email is already verified"), http.StatusBadRequest))
	}

	if err := uc.sendVerification(c, detail.ID, request.Email); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "verification email sent",
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) ForgotPassword(c *web.Context) error {
	var request account.ForgotPasswordRequest

	if err := c.BindFunc(&request, "Email"); err != nil {
		return c.RespondError(err)
	}

	detail, err := uc.account.GetByEmail(c.Ctx, request.Email)
	if err != nil {
		// Do not reveal whether the address exists.
		return c.Respond(map[string]interface{}{
			"data":   "if the email exists, a reset link was sent",
			"status": true,
		}, http.StatusOK)
	}

	token, err := commands.GenActionToken(detail.ID, commands.PurposeResetPassword, resetTokenTTL, uc.cfg.PrivateKeyPath)
	if err != nil {
		return c.RespondError(err)
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", uc.cfg.BaseUrl, token)
	body := fmt.Sprintf("Use the link below to reset your password. It expires in one hour.\r\n\r\n%s", link)
	if err := uc.mailer.Send(c.Ctx, request.Email, "Password reset", body); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "if the email exists, a reset link was sent",
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) ResetPassword(c *web.Context) error {
	var request account.ResetPasswordRequest

	if err := c.BindFunc(&request, "Token", "Password"); err != nil {
		return c.RespondError(err)
	}

	accountID, err := commands.VerifyActionToken(request.Token, commands.PurposeResetPassword, uc.cfg.PrivateKeyPath)
	if err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusBadRequest))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.RespondError(errors.Wrap(err, "hashing password"))
	}

	if err := uc.account.UpdatePassword(c.Ctx, accountID, string(hash)); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "password updated",
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) sendVerification(c *web.Context, accountID int, email string) error {
	token, err := commands.GenActionToken(accountID, commands.PurposeVerifyEmail, verifyTokenTTL, uc.cfg.PrivateKeyPath)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/verify-email?token=%s", uc.cfg.BaseUrl, token)
	body := fmt.Sprintf("Welcome aboard. Confirm your email with the link below.\r\n\r\n%s", link)

	return uc.mailer.Send(c.Ctx, email, "Verify your email", body)
}
