package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"smarthome-http-service/config"
	"smarthome-http-service/internal/error/response"
	"smarthome-http-service/services"
	"smarthome-http-service/services/container"
)

const (
	streamBuffer     = 64
	streamWriteWait  = 10 * time.Second
	streamPongWait   = 60 * time.Second
	streamPingPeriod = streamPongWait * 9 / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// StreamController 通过 websocket 推送家居事件
type StreamController struct {
	BaseControllerImpl
}

// NewStreamController 创建事件流控制器
func NewStreamController(ctx *gin.Context, container *container.ServiceContainer) *StreamController {
	return &StreamController{BaseControllerImpl{Container: container, Context: ctx}}
}

// HandleStreamFunc 返回一个处理事件流的Gin处理函数
func HandleStreamFunc(container *container.ServiceContainer) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		NewStreamController(ctx, container).Stream()
	}
}

// Stream 建立 websocket 连接，先发送完整快照，之后推送变更事件
// @Summary      事件流
// @Description  浏览器无法设置请求头时可用 token 查询参数认证
// @Tags         Stream
// @Security     BearerAuth
// @Param        token  query  string  false  "JWT"
// @Router       /stream [get]
func (c *StreamController) Stream() {
	data, err := c.Container.GetHomeService().GetData(c.Context.Request.Context())
	if err != nil {
		response.FromError(c.Context, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Context.Writer, c.Context.Request, nil)
	if err != nil {
		config.Warning("websocket 升级失败: %v", err)
		return
	}
	defer conn.Close()

	hub := c.Container.GetEventHub()
	id, events := hub.Subscribe(streamBuffer)
	defer hub.Unsubscribe(id)
	config.Info("事件流客户端 %d 已连接 (%s)", id, c.CurrentUser().Username)

	if err := c.write(conn, services.NewEvent(services.EventSnapshot, data)); err != nil {
		return
	}

	// 读循环只处理 pong 和关闭帧
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		conn.SetReadLimit(512)
		conn.SetReadDeadline(time.Now().Add(streamPongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(streamPongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(streamPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			config.Info("事件流客户端 %d 已断开", id)
			return
		case e, ok := <-events:
			if !ok {
				return
			}
			if err := c.write(conn, e); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *StreamController) write(conn *websocket.Conn, e services.Event) error {
	conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
	if err := conn.WriteJSON(e); err != nil {
		config.Warning("事件流写入失败: %v", err)
		return err
	}
	return nil
}
