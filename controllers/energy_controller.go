package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"smarthome-http-service/internal/error/response"
	"smarthome-http-service/models"
	"smarthome-http-service/services"
)

// EnergyController 处理能源数据请求
type EnergyController struct {
	BaseControllerImpl
}

// NewEnergyController 创建能源控制器
func (f *ControllerFactory) NewEnergyController(ctx *gin.Context) *EnergyController {
	return &EnergyController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// HistoricalResponse 历史数据及平均值
type HistoricalResponse struct {
	Period   string                   `json:"period" example:"week"`
	Data     []models.EnergyDataPoint `json:"data"`
	Averages *models.EnergyAverages   `json:"averages"`
}

// TypeConsumptionResponse 按设备类型的用电数据
type TypeConsumptionResponse struct {
	Type   models.DeviceType              `json:"type" example:"light"`
	Period string                         `json:"period" example:"weekly"`
	Data   []models.DeviceConsumptionData `json:"data"`
	Stats  *models.ConsumptionStats       `json:"stats"`
}

// GetHistorical 历史能源数据
// @Summary      历史能源数据
// @Description  week 为 7 天，month 为 30 天，year 为 12 个月
// @Tags         Energy
// @Produce      json
// @Security     BearerAuth
// @Param        period  query     string  false  "week | month | year"  default(week)
// @Success      200  {object}  response.Response{data=HistoricalResponse}
// @Failure      400  {object}  response.Response
// @Router       /energy/historical [get]
func (c *EnergyController) GetHistorical() {
	period := c.Context.DefaultQuery("period", services.PeriodWeek)
	energy := c.Container.GetEnergyService()

	points, err := energy.Historical(period)
	if err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, HistoricalResponse{
		Period:   period,
		Data:     points,
		Averages: energy.Averages(points),
	})
}

// GetRealtime 实时能源分布
// @Summary      实时能源分布
// @Tags         Energy
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=models.RealtimeEnergyData}
// @Router       /energy/realtime [get]
func (c *EnergyController) GetRealtime() {
	response.Success(c.Context, c.Container.GetEnergyService().Realtime())
}

// GetDeviceConsumption 单个设备的用电数据
// @Summary      设备用电数据
// @Tags         Energy
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      int     true   "设备ID"
// @Param        period  query     string  false  "weekly | monthly"  default(weekly)
// @Success      200  {object}  response.Response{data=models.DeviceConsumptionReport}
// @Failure      404  {object}  response.Response
// @Router       /devices/{id}/consumption [get]
func (c *EnergyController) GetDeviceConsumption() {
	id, ok := c.PathInt("id")
	if !ok {
		return
	}
	period := c.Context.DefaultQuery("period", services.PeriodWeekly)

	report, err := c.Container.GetEnergyService().DeviceConsumption(c.Context.Request.Context(), id, period)
	if err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, report)
}

// GetTypeConsumption 按设备类型的用电数据
// @Summary      设备类型用电数据
// @Tags         Energy
// @Produce      json
// @Security     BearerAuth
// @Param        type    query     string  true   "设备类型"
// @Param        period  query     string  false  "weekly | monthly"  default(weekly)
// @Success      200  {object}  response.Response{data=TypeConsumptionResponse}
// @Failure      400  {object}  response.Response
// @Router       /energy/consumption [get]
func (c *EnergyController) GetTypeConsumption() {
	deviceType := models.DeviceType(c.Context.Query("type"))
	if !deviceType.Valid() {
		response.ParamError(c.Context, "无效的设备类型: "+strconv.Quote(string(deviceType)))
		return
	}
	period := c.Context.DefaultQuery("period", services.PeriodWeekly)

	data, stats, err := c.Container.GetEnergyService().ConsumptionByType(deviceType, period)
	if err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, TypeConsumptionResponse{
		Type:   deviceType,
		Period: period,
		Data:   data,
		Stats:  stats,
	})
}
