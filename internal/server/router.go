package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/auth"
	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/chain"
	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/config"
	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/feedback"
	indexersvc "github.com/Sauravgopinathek/Food-Supply-Chain/internal/indexer/service"
	"github.com/Sauravgopinathek/Food-Supply-Chain/internal/score"
)

// BatchAPI is the contract-facing surface; *chain.Service implements it.
type BatchAPI interface {
	CreateBatch(ctx context.Context, name, details string) (*chain.CreateBatchResult, error)
	QueryBatches(ctx context.Context) ([]chain.BatchRecord, error)
	GetBatchDetails(ctx context.Context, id string) (*chain.BatchRecord, error)
	GrantRole(ctx context.Context, roleKey, address string) (*chain.TxReceipt, error)
	RevokeRole(ctx context.Context, roleKey, address string) (*chain.TxReceipt, error)
	GrantRoles(ctx context.Context, address string, roleKeys []string) ([]chain.RoleResult, error)
	UserRoles(ctx context.Context, address string) chain.Roles
	AdminInfo(ctx context.Context) chain.AdminInfo
}

type ScoreAPI interface {
	Seller(ctx context.Context, address string) score.Summary
	Dealer(ctx context.Context, address string) score.Summary
}

// IndexAPI serves indexed events; *indexersvc.Reader implements it.
type IndexAPI interface {
	BatchTimeline(ctx context.Context, chainID uint64, batchID string, limit int) ([]indexersvc.TimelineEvent, error)
	ListBatches(ctx context.Context, chainID uint64, limit int) ([]indexersvc.BatchOverview, error)
	Status(ctx context.Context, chainID uint64) (*indexersvc.Status, error)
}

type HeadSource interface {
	BlockNumber(ctx context.Context) (uint64, error)
}

type Deps struct {
	Config          config.Config
	ContractAddress string
	Auth            *auth.Service
	Batches         BatchAPI
	Scores          ScoreAPI
	// Index is nil when the indexer is disabled.
	Index   IndexAPI
	Heads   HeadSource
	Sellers *feedback.Journal[feedback.Review]
	Dealers *feedback.Journal[feedback.Review]
	Buyers  *feedback.Journal[feedback.BuyerEntry]
	Hub     *EventHub
	Log     *zap.SugaredLogger
}

func NewRouter(d Deps) *gin.Engine {
	if d.Log == nil {
		d.Log = zap.NewNop().Sugar()
	}
	origins := d.Config.Server.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), requestLogger(d.Log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", requestIDHeader},
		ExposeHeaders:    []string{requestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authH := newAuthHandler(d.Auth)
	r.GET("/auth/nonce", authH.Nonce)
	r.POST("/auth/login", authH.Login)

	guard := auth.JWTMiddleware(d.Auth)
	optional := auth.OptionalJWT(d.Auth)

	chainID := d.Config.Chain.ChainID
	batchH := newBatchHandler(d.Batches, d.Index, d.Buyers, chainID)
	roleH := newRoleHandler(d.Batches)
	repH := newReputationHandler(d.Scores, d.Sellers, d.Dealers)
	chainH := newChainHandler(d.Heads, d.Index, chainID)
	addrH := newAddressHandler(d.ContractAddress)

	api := r.Group("/api/v1")
	api.GET("/addresses", addrH.LookupAddress)
	api.GET("/chain/status", chainH.Status)

	api.GET("/batches", batchH.List)
	api.GET("/batches/indexed", batchH.Indexed)
	api.GET("/batches/:id", batchH.Detail)
	api.GET("/batches/:id/timeline", batchH.Timeline)
	api.POST("/batches", guard, batchH.Create)
	api.GET("/batches/:id/buyers", batchH.ListBuyers)
	api.POST("/batches/:id/buyers", guard, batchH.AddBuyer)
	api.DELETE("/batches/:id/buyers", guard, batchH.ClearBuyers)

	api.GET("/roles/admin", roleH.AdminInfo)
	api.GET("/roles/:address", roleH.UserRoles)
	api.POST("/roles/grant", guard, roleH.Grant)
	api.POST("/roles/revoke", guard, roleH.Revoke)

	api.GET("/sellers/:address/score", repH.SellerScore)
	api.GET("/sellers/:address/feedback", repH.ListSellerFeedback)
	api.POST("/sellers/:address/feedback", optional, repH.AddSellerFeedback)
	api.DELETE("/sellers/:address/feedback", guard, repH.ClearSellerFeedback)
	api.GET("/dealers/:address/score", repH.DealerScore)
	api.GET("/dealers/:address/reviews", repH.ListDealerReviews)
	api.POST("/dealers/:address/reviews", optional, repH.AddDealerReview)
	api.DELETE("/dealers/:address/reviews", guard, repH.ClearDealerReviews)

	if d.Hub != nil {
		api.GET("/events", d.Hub.ServeWS)
	}
	return r
}
