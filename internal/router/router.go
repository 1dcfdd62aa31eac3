package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "kanban-workspace-api/docs"
	"kanban-workspace-api/internal/config"
	"kanban-workspace-api/internal/handler"
	"kanban-workspace-api/internal/metrics"
	"kanban-workspace-api/internal/middleware"
	"kanban-workspace-api/internal/notifier"
	"kanban-workspace-api/internal/repository"
	"kanban-workspace-api/internal/service"
)

// Setup wires repositories, services and handlers into a gin engine
func Setup(cfg *config.Config, db *gorm.DB, n notifier.Notifier, m *metrics.Metrics, logger *zap.Logger) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics(m))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	workspaceRepo := repository.NewWorkspaceRepository(db)
	wsMemberRepo := repository.NewWorkspaceMemberRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	boardMemberRepo := repository.NewBoardMemberRepository(db)
	listRepo := repository.NewKanbanListRepository(db)
	cardRepo := repository.NewKanbanCardRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	labelRepo := repository.NewLabelRepository(db)
	wsInviteRepo := repository.NewWorkspaceInviteRepository(db)
	boardInviteRepo := repository.NewBoardInviteRepository(db)

	// Services
	workspaceService := service.NewWorkspaceService(db, workspaceRepo, wsMemberRepo, boardMemberRepo, n, m, logger)
	boardService := service.NewBoardService(db, boardRepo, boardMemberRepo, workspaceRepo, wsMemberRepo, n, m, logger)
	contentService := service.NewBoardContentService(db, boardRepo, boardMemberRepo, wsMemberRepo, listRepo, cardRepo, commentRepo, labelRepo, n, m, logger)
	labelService := service.NewLabelService(boardRepo, boardMemberRepo, wsMemberRepo, labelRepo, n, logger)
	inviteService := service.NewInviteService(db, userRepo, workspaceRepo, boardRepo, wsMemberRepo, boardMemberRepo, wsInviteRepo, boardInviteRepo, n, m, logger)

	// Handlers
	workspaceHandler := handler.NewWorkspaceHandler(workspaceService)
	boardHandler := handler.NewBoardHandler(boardService)
	contentHandler := handler.NewBoardContentHandler(contentService)
	labelHandler := handler.NewLabelHandler(labelService)
	inviteHandler := handler.NewInviteHandler(inviteService)
	wsHandler := handler.NewWSHandler(logger, boardService, cfg.Auth.SecretKey)

	// Unauthenticated surface
	r.GET("/health", handler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Websocket auth rides in the query string, not the Authorization header
	r.GET("/ws/boards/:boardId", wsHandler.HandleBoardStream)

	api := r.Group(cfg.Server.BasePath)
	api.Use(middleware.Auth(cfg.Auth.SecretKey))
	{
		api.GET("/invites", inviteHandler.ListMyInvites)

		workspaces := api.Group("/workspaces")
		{
			workspaces.POST("", workspaceHandler.CreateWorkspace)
			workspaces.GET("", workspaceHandler.ListMyWorkspaces)
			workspaces.GET("/:workspaceId", workspaceHandler.GetWorkspace)
			workspaces.PUT("/:workspaceId", workspaceHandler.UpdateWorkspace)
			workspaces.DELETE("/:workspaceId", workspaceHandler.DeleteWorkspace)
			workspaces.GET("/:workspaceId/settings", workspaceHandler.GetWorkspace)
			workspaces.PUT("/:workspaceId/settings", workspaceHandler.UpdateSettings)

			workspaces.GET("/:workspaceId/members", workspaceHandler.ListMembers)
			workspaces.PUT("/:workspaceId/members/:userId/role", workspaceHandler.ChangeMemberRole)
			workspaces.DELETE("/:workspaceId/members/:userId", workspaceHandler.RemoveMember)
			workspaces.POST("/:workspaceId/members/leave", workspaceHandler.LeaveWorkspace)
			workspaces.POST("/:workspaceId/transfer-ownership", workspaceHandler.TransferOwnership)

			workspaces.POST("/:workspaceId/invites", inviteHandler.CreateWorkspaceInvite)
			workspaces.GET("/:workspaceId/invites", inviteHandler.ListWorkspaceInvites)
			workspaces.POST("/invites/:inviteId/accept", inviteHandler.AcceptWorkspaceInvite)
			workspaces.POST("/invites/:inviteId/decline", inviteHandler.DeclineWorkspaceInvite)
			workspaces.POST("/invites/:inviteId/cancel", inviteHandler.CancelWorkspaceInvite)
		}

		boards := api.Group("/boards")
		{
			boards.POST("", boardHandler.CreateBoard)
			boards.GET("/workspace/:workspaceId", boardHandler.ListBoardsByWorkspace)
			boards.GET("/:boardId", boardHandler.GetBoard)
			boards.PUT("/:boardId", boardHandler.UpdateBoard)
			boards.DELETE("/:boardId", boardHandler.DeleteBoard)
			boards.POST("/:boardId/join", boardHandler.JoinBoard)
			boards.POST("/:boardId/leave", boardHandler.LeaveBoard)

			boards.GET("/:boardId/members", boardHandler.ListMembers)
			boards.POST("/:boardId/members", boardHandler.AddMember)
			boards.PUT("/:boardId/members/:userId/role", boardHandler.ChangeMemberRole)
			boards.DELETE("/:boardId/members/:userId", boardHandler.RemoveMember)

			boards.POST("/:boardId/invites", inviteHandler.CreateBoardInvite)
			boards.GET("/:boardId/invites", inviteHandler.ListBoardInvites)
			boards.POST("/invites/:inviteId/accept", inviteHandler.AcceptBoardInvite)
			boards.POST("/invites/:inviteId/decline", inviteHandler.DeclineBoardInvite)
			boards.POST("/invites/:inviteId/cancel", inviteHandler.CancelBoardInvite)

			boards.POST("/:boardId/lists", contentHandler.CreateList)
			boards.GET("/:boardId/lists", contentHandler.ListLists)
			boards.PUT("/:boardId/lists/:listId", contentHandler.RenameList)
			boards.PUT("/:boardId/lists/:listId/move", contentHandler.MoveList)
			boards.DELETE("/:boardId/lists/:listId", contentHandler.DeleteList)

			boards.POST("/:boardId/cards", contentHandler.CreateCard)
			boards.GET("/:boardId/cards", contentHandler.ListCards)
			boards.GET("/:boardId/cards/:cardId", contentHandler.GetCard)
			boards.PUT("/:boardId/cards/:cardId", contentHandler.UpdateCard)
			boards.PUT("/:boardId/cards/:cardId/move", contentHandler.MoveCard)
			boards.DELETE("/:boardId/cards/:cardId", contentHandler.DeleteCard)

			boards.POST("/:boardId/cards/:cardId/assignees", contentHandler.AssignMember)
			boards.DELETE("/:boardId/cards/:cardId/assignees/:userId", contentHandler.UnassignMember)
			boards.POST("/:boardId/cards/:cardId/labels", contentHandler.AttachLabel)
			boards.DELETE("/:boardId/cards/:cardId/labels/:labelId", contentHandler.DetachLabel)

			boards.POST("/:boardId/cards/:cardId/checklists", contentHandler.AddChecklist)
			boards.DELETE("/:boardId/cards/:cardId/checklists/:checklistId", contentHandler.RemoveChecklist)
			boards.POST("/:boardId/cards/:cardId/checklists/:checklistId/items", contentHandler.AddChecklistItem)
			boards.PUT("/:boardId/cards/:cardId/checklists/:checklistId/items/:itemId", contentHandler.ToggleChecklistItem)
			boards.DELETE("/:boardId/cards/:cardId/checklists/:checklistId/items/:itemId", contentHandler.RemoveChecklistItem)

			boards.POST("/:boardId/cards/:cardId/comments", contentHandler.AddComment)
			boards.GET("/:boardId/cards/:cardId/comments", contentHandler.ListComments)
			boards.PUT("/:boardId/comments/:commentId", contentHandler.UpdateComment)
			boards.DELETE("/:boardId/comments/:commentId", contentHandler.DeleteComment)

			boards.GET("/:boardId/labels", labelHandler.ListLabels)
			boards.POST("/:boardId/labels", labelHandler.CreateLabel)
			boards.PUT("/:boardId/labels/:labelId", labelHandler.UpdateLabel)
			boards.DELETE("/:boardId/labels/:labelId", labelHandler.DeleteLabel)
		}
	}

	return r
}
