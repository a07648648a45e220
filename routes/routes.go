package routes

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"inkwell/audit"
	"inkwell/blogs"
	"inkwell/filemgr"
	"inkwell/middleware"
	"inkwell/ratelim"
	"inkwell/trash"
	"inkwell/users"
	"inkwell/utils"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/postpic/*filepath", http.Dir(filemgr.PostPicDir))
}

func AddUserRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/v1/user", users.DefaultRoute)
	router.GET("/api/v1/user/allUsers", middleware.Authenticate(middleware.RequireAdmin(users.GetAllUsers)))
	router.GET("/api/v1/user/softDelete", middleware.Authenticate(middleware.RequireAdmin(trash.TrashedUsers)))
	router.POST("/api/v1/user/newUser", rl.Limit(users.NewUser))
	router.POST("/api/v1/user/auth", rl.Limit(users.Auth))
	router.GET("/api/v1/user/searchUser/search", middleware.Authenticate(middleware.RequireAdmin(users.SearchUser)))
	router.POST("/api/v1/user/resetPasswordLink", rl.Limit(users.ResetPasswordLink))
	router.PATCH("/api/v1/user/resetPassword/:resetLink", users.ResetPassword)
	router.PATCH("/api/v1/user/editUser/:userId", middleware.Authenticate(users.EditUser))
	router.DELETE("/api/v1/user/softDelete/:userId", middleware.Authenticate(middleware.RequireAdmin(users.SoftDeleteUser)))
	router.GET("/api/v1/user/details/:userId", middleware.Authenticate(users.UserDetails))
}

func AddBlogRoutes(router *httprouter.Router) {
	router.GET("/api/v1/blog", blogs.DefaultRoute)
	router.GET("/api/v1/blog/allPosts", middleware.OptionalAuth(blogs.GetAllPosts))
	router.GET("/api/v1/blog/softDelete", middleware.Authenticate(middleware.RequireAdmin(trash.TrashedPosts)))
	router.POST("/api/v1/blog/newPost", middleware.Authenticate(blogs.NewPost))
	router.GET("/api/v1/blog/searchPost/search", middleware.OptionalAuth(blogs.SearchPost))
	router.PATCH("/api/v1/blog/editPost/:postId", middleware.Authenticate(middleware.RequireAdmin(blogs.EditPost)))
	router.PATCH("/api/v1/blog/comment/:postId", middleware.Authenticate(blogs.CommentPost))
	router.PATCH("/api/v1/blog/likePost/:postId", middleware.Authenticate(blogs.LikePost))
	router.DELETE("/api/v1/blog/softDelete/:postId", middleware.Authenticate(blogs.SoftDeletePost))
	router.GET("/api/v1/blog/details/:postId", middleware.Authenticate(blogs.PostDetails))
	router.GET("/api/v1/blog/details/:postId/qr", middleware.Authenticate(blogs.PostQR))
}

func AddLogRoutes(router *httprouter.Router) {
	router.GET("/api/v1/log/allLogs", middleware.Authenticate(middleware.RequireAdmin(audit.AllLogs)))
	router.GET("/api/v1/log/userLog/:userId", middleware.Authenticate(audit.UserLogs))
	router.GET("/api/v1/log/export", middleware.Authenticate(middleware.RequireAdmin(audit.ExportLogs)))
}

// Banner is the root API default route.
func Banner(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondErr(w, utils.KindBanner)
}
