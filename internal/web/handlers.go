package web

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"bloggable-backend/internal/auth"
	"bloggable-backend/internal/database"
	"bloggable-backend/internal/models"
)

// Handlers holds the services the page handlers need. Everything is passed
// in explicitly at construction.
type Handlers struct {
	authSvc *auth.Service
	posts   *database.PostRepo
}

// NewHandlers creates the web handler set
func NewHandlers(authSvc *auth.Service, posts *database.PostRepo) *Handlers {
	return &Handlers{authSvc: authSvc, posts: posts}
}

// pageData is the payload every template receives.
type pageData struct {
	Title       string
	CurrentUser *models.User
	Flash       *Flash
	Posts       []*models.Post
	Post        *models.Post
	Form        map[string]string
}

func (h *Handlers) page(c echo.Context, title string) pageData {
	return pageData{
		Title:       title,
		CurrentUser: auth.GetUserFromContext(c),
		Flash:       popFlash(c),
		Form:        map[string]string{},
	}
}

// index handles GET /
func (h *Handlers) index(c echo.Context) error {
	posts, err := h.posts.List()
	if err != nil {
		c.Logger().Error("list posts: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}

	data := h.page(c, "Home")
	data.Posts = posts
	return c.Render(http.StatusOK, "index.html", data)
}

// login handles GET and POST /login
func (h *Handlers) login(c echo.Context) error {
	if c.Request().Method == http.MethodGet {
		return c.Render(http.StatusOK, "login.html", h.page(c, "Login"))
	}

	username := c.FormValue("username")
	password := c.FormValue("password")
	if username == "" || password == "" {
		setFlash(c, "error", "Username and password are required!")
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	token, session, err := h.authSvc.Login(username, password)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			c.Logger().Error("login: ", err)
		}
		// One generic message for both unknown user and wrong password.
		setFlash(c, "error", "Login unsuccessful!")
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	// A stale cookie from an earlier login is replaced, not kept alongside.
	if old := auth.TokenFromRequest(c); old != "" && old != token {
		if err := h.authSvc.Logout(old); err != nil && !errors.Is(err, database.ErrSessionNotFound) {
			c.Logger().Error("replace session: ", err)
		}
	}

	setSessionCookie(c, token, session.ExpiresAt)
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// logout handles GET /logout
func (h *Handlers) logout(c echo.Context) error {
	if token := auth.TokenFromRequest(c); token != "" {
		if err := h.authSvc.Logout(token); err != nil && !errors.Is(err, database.ErrSessionNotFound) {
			c.Logger().Error("logout: ", err)
		}
	}

	clearSessionCookie(c)
	setFlash(c, "success", "You have been logged out!")
	return c.Redirect(http.StatusSeeOther, "/")
}

// register handles GET and POST /register
func (h *Handlers) register(c echo.Context) error {
	if c.Request().Method == http.MethodGet {
		return c.Render(http.StatusOK, "register.html", h.page(c, "Register"))
	}

	username := c.FormValue("username")
	password := c.FormValue("password")
	confirm := c.FormValue("confirm_password")

	data := h.page(c, "Register")
	data.Form["username"] = username

	switch {
	case username == "" || password == "":
		data.Flash = &Flash{Category: "error", Message: "Username and password are required!"}
		return c.Render(http.StatusOK, "register.html", data)
	case len(username) > models.MaxUsernameLength:
		data.Flash = &Flash{Category: "error", Message: "Username is too long!"}
		return c.Render(http.StatusOK, "register.html", data)
	case password != confirm:
		data.Flash = &Flash{Category: "error", Message: "Passwords do not match!"}
		return c.Render(http.StatusOK, "register.html", data)
	}

	if _, err := h.authSvc.Register(username, password); err != nil {
		if errors.Is(err, database.ErrUserExists) {
			data.Flash = &Flash{Category: "error", Message: "User already exists!"}
			return c.Render(http.StatusOK, "register.html", data)
		}
		c.Logger().Error("register: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}

	setFlash(c, "success", "Account '"+username+"' successfully registered!")
	return c.Redirect(http.StatusSeeOther, "/login")
}

// dashboard handles GET /dashboard
func (h *Handlers) dashboard(c echo.Context) error {
	user := auth.GetUserFromContext(c)

	posts, err := h.posts.ListByAuthor(user.Username)
	if err != nil {
		c.Logger().Error("list posts by author: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}

	data := h.page(c, "Dashboard")
	data.Posts = posts
	return c.Render(http.StatusOK, "dashboard.html", data)
}

// createPost handles GET and POST /create
func (h *Handlers) createPost(c echo.Context) error {
	if c.Request().Method == http.MethodGet {
		return c.Render(http.StatusOK, "create.html", h.page(c, "New Post"))
	}

	user := auth.GetUserFromContext(c)
	title := c.FormValue("title")
	content := c.FormValue("body")

	if title == "" || content == "" {
		data := h.page(c, "New Post")
		data.Flash = &Flash{Category: "error", Message: "Title and body are required!"}
		data.Form["title"] = title
		data.Form["body"] = content
		return c.Render(http.StatusOK, "create.html", data)
	}

	post, err := h.posts.Create(user.Username, title, content)
	if err != nil {
		c.Logger().Error("create post: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}

	setFlash(c, "success", "Post created!")
	return c.Redirect(http.StatusSeeOther, "/post/"+strconv.FormatInt(post.ID, 10))
}

// viewPost handles GET /post/:id
func (h *Handlers) viewPost(c echo.Context) error {
	post, err := h.getPost(c)
	if err != nil {
		return err
	}

	if !auth.CanView(post) {
		return echo.NewHTTPError(http.StatusForbidden)
	}

	data := h.page(c, post.Title)
	data.Post = post
	return c.Render(http.StatusOK, "post.html", data)
}

// editPost handles GET and POST /post/:id/edit
func (h *Handlers) editPost(c echo.Context) error {
	post, err := h.getPost(c)
	if err != nil {
		return err
	}

	user := auth.GetUserFromContext(c)
	if !auth.CanModify(user, post) {
		return echo.NewHTTPError(http.StatusForbidden)
	}

	if c.Request().Method == http.MethodGet {
		data := h.page(c, "Edit Post")
		data.Post = post
		data.Form["title"] = post.Title
		data.Form["body"] = post.Content
		return c.Render(http.StatusOK, "edit.html", data)
	}

	title := c.FormValue("title")
	content := c.FormValue("body")
	if title == "" || content == "" {
		data := h.page(c, "Edit Post")
		data.Post = post
		data.Flash = &Flash{Category: "error", Message: "Title and body are required!"}
		data.Form["title"] = title
		data.Form["body"] = content
		return c.Render(http.StatusOK, "edit.html", data)
	}

	if err := h.posts.Update(post, title, content); err != nil {
		c.Logger().Error("update post: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}

	setFlash(c, "success", "Post edited!")
	return c.Redirect(http.StatusSeeOther, "/post/"+strconv.FormatInt(post.ID, 10))
}

// deletePost handles GET and POST /post/:id/delete
func (h *Handlers) deletePost(c echo.Context) error {
	post, err := h.getPost(c)
	if err != nil {
		return err
	}

	user := auth.GetUserFromContext(c)
	if !auth.CanModify(user, post) {
		return echo.NewHTTPError(http.StatusForbidden)
	}

	if err := h.posts.Delete(post.ID); err != nil {
		c.Logger().Error("delete post: ", err)
		return echo.NewHTTPError(http.StatusInternalServerError)
	}

	setFlash(c, "success", "Post has been deleted!")
	return c.Redirect(http.StatusSeeOther, "/")
}

// getPost loads the post named by the :id route parameter.
func (h *Handlers) getPost(c echo.Context) (*models.Post, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusNotFound)
	}

	post, err := h.posts.GetByID(id)
	if err != nil {
		if errors.Is(err, database.ErrPostNotFound) {
			return nil, echo.NewHTTPError(http.StatusNotFound)
		}
		c.Logger().Error("get post: ", err)
		return nil, echo.NewHTTPError(http.StatusInternalServerError)
	}

	return post, nil
}

// setSessionCookie installs the session token cookie (HttpOnly for security)
func setSessionCookie(c echo.Context, token string, expiresAt time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.Request().TLS != nil, // Secure if HTTPS
		SameSite: http.SameSiteLaxMode,
		Expires:  expiresAt,
	})
}

// clearSessionCookie removes the session token cookie
func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
