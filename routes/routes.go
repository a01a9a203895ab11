package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"smarthome-http-service/config"
	"smarthome-http-service/controllers"
	_ "smarthome-http-service/docs"
	"smarthome-http-service/middleware"
	"smarthome-http-service/services"
	"smarthome-http-service/services/container"
)

// 能源和天气接口的缓存时间
const responseCacheTTL = time.Minute

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(serviceContainer *container.ServiceContainer) *gin.Engine {
	cfg := serviceContainer.GetConfig()

	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.CORSOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// 初始化中间件
	middleware.InitAuthMiddleware(serviceContainer.GetUserService())
	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册路由
	registerRoutes(r, serviceContainer, cfg)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
	cfg *config.Config,
) {
	// API 路由根路径
	api := r.Group("/api")
	// 注册公共路由
	registerPublicRoutes(api, container, cfg)
	// 注册需要认证的路由
	registerAuthenticatedRoutes(api, container)
	// 注册管理员路由
	registerAdminRoutes(api, container)
}

// registerPublicRoutes 注册公共路由
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
	cfg *config.Config,
) {
	// 健康检查
	api.GET("/ping", controllers.NewHealthCheckController(container).Ping)

	// 认证路由，按IP限流
	api.POST("/auth/login", middleware.IPRateLimiter(cfg.LoginRate, cfg.LoginBurst), controllers.HandleJWTFunc(container, "login"))
}

// registerAuthenticatedRoutes 注册需要登录的路由
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	auth := api.Group("/")
	auth.Use(middleware.AuthenticateUser())

	factory := controllers.NewControllerFactory(container)
	cache := newEventPurgedCache(container.GetEventHub())

	// 会话
	auth.POST("/auth/logout", controllers.HandleJWTFunc(container, "logout"))
	auth.GET("/auth/me", controllers.HandleJWTFunc(container, "me"))

	// 家居数据和事件流
	auth.GET("/home", controllers.HandleRoomFunc(container, "getHome"))
	auth.GET("/stream", controllers.HandleStreamFunc(container))

	// 房间路由
	auth.Group("/rooms").GET("", controllers.HandleRoomFunc(container, "getRooms"))
	auth.Group("/rooms").GET("/:id", controllers.HandleRoomFunc(container, "getRoom"))
	auth.Group("/rooms").GET("/:id/devices", controllers.HandleRoomFunc(container, "getRoomDevices"))
	auth.Group("/rooms").PUT("/:id/temperature-range", controllers.HandleClimateFunc(container, "setTemperatureRange"))

	// 设备路由
	auth.Group("/devices").GET("", controllers.HandleDeviceFunc(container, "getDevices"))
	auth.Group("/devices").GET("/:id", controllers.HandleDeviceFunc(container, "getDevice"))
	auth.Group("/devices").GET("/:id/room", controllers.HandleDeviceFunc(container, "getDeviceRoom"))
	auth.Group("/devices").GET("/:id/consumption", middleware.Cache(cache, responseCacheTTL), func(c *gin.Context) {
		factory.NewEnergyController(c).GetDeviceConsumption()
	})

	// 设备控制
	auth.Group("/devices").POST("/:id/power", controllers.HandleDeviceControlFunc(container, "togglePower"))
	auth.Group("/devices").PUT("/:id/brightness", controllers.HandleDeviceControlFunc(container, "setBrightness"))
	auth.Group("/devices").PUT("/:id/color", controllers.HandleDeviceControlFunc(container, "setColor"))
	auth.Group("/devices").POST("/:id/lock", controllers.HandleDeviceControlFunc(container, "toggleLock"))
	auth.Group("/devices").POST("/:id/open", controllers.HandleDeviceControlFunc(container, "toggleOpen"))
	auth.Group("/devices").POST("/:id/alarm/test", controllers.HandleDeviceControlFunc(container, "testSmokeAlarm"))
	auth.Group("/devices").POST("/:id/alarm/reset", controllers.HandleDeviceControlFunc(container, "resetSmokeAlarm"))
	auth.Group("/devices").PUT("/:id/auto-light", controllers.HandleDeviceControlFunc(container, "setAutoLight"))
	auth.Group("/devices").POST("/:id/motion", controllers.HandleDeviceControlFunc(container, "simulateMotion"))
	auth.Group("/devices").DELETE("/:id/motion", controllers.HandleDeviceControlFunc(container, "clearMotion"))

	// 自动温控
	auth.Group("/climate").GET("/status", controllers.HandleClimateFunc(container, "getStatus"))
	auth.Group("/climate").POST("/evaluate", controllers.HandleClimateFunc(container, "evaluate"))
	auth.Group("/devices").PUT("/:id/override", controllers.HandleClimateFunc(container, "manualOverride"))
	auth.Group("/devices").DELETE("/:id/override", controllers.HandleClimateFunc(container, "resetToAuto"))

	// 离家模式
	auth.Group("/away-mode").GET("", controllers.HandleAwayModeFunc(container, "getStatus"))
	auth.Group("/away-mode").PUT("/options", controllers.HandleAwayModeFunc(container, "updateOptions"))
	auth.Group("/away-mode").POST("/activate", controllers.HandleAwayModeFunc(container, "activate"))
	auth.Group("/away-mode").POST("/deactivate", controllers.HandleAwayModeFunc(container, "deactivate"))

	// 设备摊销
	auth.Group("/amortization").GET("", controllers.HandleAmortizationFunc(container, "list"))
	auth.Group("/amortization").GET("/summary", controllers.HandleAmortizationFunc(container, "summary"))
	auth.Group("/amortization").GET("/charts", controllers.HandleAmortizationFunc(container, "charts"))
	auth.Group("/amortization").GET("/unamortized", controllers.HandleAmortizationFunc(container, "unamortized"))
	auth.Group("/amortization").POST("/calculate", controllers.HandleAmortizationFunc(container, "calculate"))
	auth.Group("/amortization").GET("/:deviceId", controllers.HandleAmortizationFunc(container, "get"))
	auth.Group("/amortization").PUT("/:deviceId", controllers.HandleAmortizationFunc(container, "upsert"))
	auth.Group("/amortization").DELETE("/:deviceId", controllers.HandleAmortizationFunc(container, "delete"))

	// 能源数据
	auth.Group("/energy").GET("/realtime", func(c *gin.Context) {
		factory.NewEnergyController(c).GetRealtime()
	})
	auth.Group("/energy").GET("/historical", middleware.Cache(cache, responseCacheTTL), func(c *gin.Context) {
		factory.NewEnergyController(c).GetHistorical()
	})
	auth.Group("/energy").GET("/consumption", middleware.Cache(cache, responseCacheTTL), func(c *gin.Context) {
		factory.NewEnergyController(c).GetTypeConsumption()
	})

	// 天气
	auth.GET("/weather", middleware.Cache(cache, responseCacheTTL), func(c *gin.Context) {
		factory.NewWeatherController(c).GetWeather()
	})

	// 界面偏好
	auth.Group("/preferences").GET("", controllers.HandlePreferencesFunc(container, "get"))
	auth.Group("/preferences").PUT("", controllers.HandlePreferencesFunc(container, "update"))

	// MQTT 桥接
	auth.Group("/mqtt").GET("/status", controllers.HandleMQTTFunc(container, "getStatus"))
	auth.Group("/mqtt").POST("/devices/:id/command", controllers.HandleMQTTFunc(container, "sendCommand"))
}

// registerAdminRoutes 注册仅管理员可用的路由
func registerAdminRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	admin := api.Group("/")
	admin.Use(middleware.AuthenticateAdmin())

	// 房间管理
	admin.Group("/rooms").POST("", controllers.HandleRoomFunc(container, "createRoom"))
	admin.Group("/rooms").PUT("/:id", controllers.HandleRoomFunc(container, "updateRoom"))
	admin.Group("/rooms").DELETE("/:id", controllers.HandleRoomFunc(container, "deleteRoom"))

	// 设备管理
	admin.Group("/devices").POST("", controllers.HandleDeviceFunc(container, "createDevice"))
	admin.Group("/devices").PUT("/:id", controllers.HandleDeviceFunc(container, "updateDevice"))
	admin.Group("/devices").DELETE("/:id", controllers.HandleDeviceFunc(container, "deleteDevice"))

	// 用户管理
	admin.Group("/users").GET("", controllers.HandleAdminFunc(container, "getUsers"))
	admin.Group("/users").GET("/:id", controllers.HandleAdminFunc(container, "getUser"))
	admin.Group("/users").POST("", controllers.HandleAdminFunc(container, "createUser"))
	admin.Group("/users").DELETE("/:id", controllers.HandleAdminFunc(container, "deleteUser"))

	// 数据维护
	admin.Group("/home").POST("/reset", controllers.HandleAdminFunc(container, "resetData"))
	admin.Group("/home").POST("/reload", controllers.HandleAdminFunc(container, "reloadData"))
}

// newEventPurgedCache 家居数据变化时清空响应缓存
func newEventPurgedCache(hub *services.EventHub) *middleware.ResponseCache {
	cache := middleware.NewResponseCache()
	hub.AddSink(func(e services.Event) {
		switch e.Type {
		case services.EventDeviceAdded, services.EventDeviceDeleted, services.EventRoomDeleted, services.EventHomeReset:
			cache.Purge()
		}
	})
	return cache
}
