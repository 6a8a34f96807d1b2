package admin

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"fotografica/forms"
	"fotografica/loggers"
)

// requireAuth guards every /admin route: anonymous requests are redirected to
// the login page.
func (a *AdminModule) requireAuth(c *gin.Context) {
	session := sessions.Default(c)
	userID := session.Get("user_id")

	if userID == nil {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}

	c.Set("user_id", userID)
	c.Next()
}

func (a *AdminModule) loginPage(c *gin.Context) {
	session := sessions.Default(c)
	if session.Get("user_id") != nil {
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	c.HTML(http.StatusOK, "login.html", gin.H{
		"flashes": popFlashes(c),
	})
}

func (a *AdminModule) loginPost(c *gin.Context) {
	form := forms.BindLoginForm(c)
	if !form.Validate() {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"form":   form,
			"errors": form.Errors,
		})
		return
	}

	user, err := a.store.UserByUsername(form.Username)
	if err != nil || !checkPasswordHash(form.Password, user.PasswordHash) {
		// Same message either way: no hint about which half was wrong.
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"form":  form,
			"error": "Login unsuccessful. Please check username and password",
		})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/admin")
}

func (a *AdminModule) logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

func (a *AdminModule) forgotPasswordPage(c *gin.Context) {
	c.HTML(http.StatusOK, "forgot_password.html", gin.H{
		"flashes": popFlashes(c),
	})
}

// forgotPasswordPost resets the admin password back to the configured value.
// Only the admin account can be reset; every other username is rejected.
func (a *AdminModule) forgotPasswordPost(c *gin.Context) {
	form := forms.BindResetForm(c)
	if !form.Validate() {
		c.HTML(http.StatusBadRequest, "forgot_password.html", gin.H{
			"form":   form,
			"errors": form.Errors,
		})
		return
	}

	if form.Username != a.cfg.AdminUsername {
		c.HTML(http.StatusForbidden, "forgot_password.html", gin.H{
			"form":  form,
			"error": "Only the admin password can be reset.",
		})
		return
	}

	user, err := a.store.UserByUsername(a.cfg.AdminUsername)
	if err != nil {
		c.HTML(http.StatusNotFound, "forgot_password.html", gin.H{
			"form":  form,
			"error": "Admin user not found.",
		})
		return
	}

	hash, err := hashPassword(a.cfg.AdminPassword)
	if err != nil {
		a.serverError(c, "Error resetting password")
		return
	}
	user.PasswordHash = hash
	if err := a.store.UpdateUser(user); err != nil {
		a.serverError(c, "Error resetting password")
		return
	}

	loggers.Logger.Info("admin password reset")
	addFlash(c, "Password reset successfully! Log in with the configured admin password.")
	c.Redirect(http.StatusFound, "/login")
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func checkPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func addFlash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	session.Save()
}

func popFlashes(c *gin.Context) []interface{} {
	session := sessions.Default(c)
	flashes := session.Flashes()
	if len(flashes) > 0 {
		session.Save()
	}
	return flashes
}
