package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"smarthome-http-service/internal/error/response"
)

// WeatherController 处理天气相关的请求
type WeatherController struct {
	BaseControllerImpl
}

// NewWeatherController 创建一个新的天气控制器
func (f *ControllerFactory) NewWeatherController(ctx *gin.Context) *WeatherController {
	return &WeatherController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// GetWeather 当前天气和逐小时预报
// @Summary      当前天气
// @Description  同一小时内返回相同的模拟天气，可通过 at 指定时间 (RFC3339)
// @Tags         Weather
// @Produce      json
// @Security     BearerAuth
// @Param        at   query     string  false  "时间"
// @Success      200  {object}  response.Response{data=models.Weather}
// @Failure      400  {object}  response.Response
// @Router       /weather [get]
func (c *WeatherController) GetWeather() {
	weatherService := c.Container.GetWeatherService()

	at := c.Context.Query("at")
	if at == "" {
		response.Success(c.Context, weatherService.Current())
		return
	}
	t, err := time.Parse(time.RFC3339, at)
	if err != nil {
		response.ParamError(c.Context, "无效的时间参数: "+at)
		return
	}
	response.Success(c.Context, weatherService.At(t))
}
