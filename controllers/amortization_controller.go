package controllers

import (
	"github.com/gin-gonic/gin"

	"smarthome-http-service/internal/error/response"
	"smarthome-http-service/models"
	"smarthome-http-service/services/container"
)

// AmortizationController 处理设备摊销请求
type AmortizationController struct {
	BaseControllerImpl
}

// NewAmortizationController 创建摊销控制器
func NewAmortizationController(ctx *gin.Context, container *container.ServiceContainer) *AmortizationController {
	return &AmortizationController{BaseControllerImpl{Container: container, Context: ctx}}
}

// HandleAmortizationFunc 返回一个处理摊销请求的Gin处理函数
func HandleAmortizationFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAmortizationController(ctx, container)

		switch method {
		case "list":
			controller.List()
		case "get":
			controller.Get()
		case "upsert":
			controller.Upsert()
		case "delete":
			controller.Delete()
		case "summary":
			controller.Summary()
		case "calculate":
			controller.Calculate()
		case "charts":
			controller.Charts()
		case "unamortized":
			controller.Unamortized()
		default:
			invalidMethod(ctx)
		}
	}
}

// 1. List 所有摊销记录
// @Summary      摊销记录列表
// @Tags         Amortization
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]models.AmortizationView}
// @Router       /amortization [get]
func (c *AmortizationController) List() {
	views, err := c.Container.GetAmortizationService().List(c.Context.Request.Context())
	if err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, views)
}

// 2. Get 单个设备的摊销记录
// @Summary      设备摊销记录
// @Tags         Amortization
// @Produce      json
// @Security     BearerAuth
// @Param        deviceId  path      int  true  "设备ID"
// @Success      200  {object}  response.Response{data=models.AmortizationView}
// @Failure      404  {object}  response.Response
// @Router       /amortization/{deviceId} [get]
func (c *AmortizationController) Get() {
	id, ok := c.PathInt("deviceId")
	if !ok {
		return
	}
	view, err := c.Container.GetAmortizationService().Get(c.Context.Request.Context(), id)
	if err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, view)
}

// 3. Upsert 创建或更新摊销记录
// @Summary      保存摊销记录
// @Description  同时把成本数据写回设备
// @Tags         Amortization
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        deviceId  path      int                      true  "设备ID"
// @Param        request   body      models.AmortizationData  true  "成本数据"
// @Success      200  {object}  response.Response{data=models.AmortizationView}
// @Failure      400  {object}  response.Response
// @Router       /amortization/{deviceId} [put]
func (c *AmortizationController) Upsert() {
	id, ok := c.PathInt("deviceId")
	if !ok {
		return
	}
	var req models.AmortizationData
	if !c.BindJSON(&req) {
		return
	}
	req.DeviceID = id

	view, err := c.Container.GetAmortizationService().Upsert(c.Context.Request.Context(), req)
	if err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, view)
}

// 4. Delete 删除摊销记录
// @Summary      删除摊销记录
// @Tags         Amortization
// @Produce      json
// @Security     BearerAuth
// @Param        deviceId  path      int  true  "设备ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /amortization/{deviceId} [delete]
func (c *AmortizationController) Delete() {
	id, ok := c.PathInt("deviceId")
	if !ok {
		return
	}
	if err := c.Container.GetAmortizationService().Delete(c.Context.Request.Context(), id); err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, nil)
}

// 5. Summary 摊销汇总
// @Summary      摊销汇总
// @Tags         Amortization
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=models.AmortizationSummary}
// @Router       /amortization/summary [get]
func (c *AmortizationController) Summary() {
	summary, err := c.Container.GetAmortizationService().Summary(c.Context.Request.Context())
	if err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, summary)
}

// 6. Calculate 试算回本周期，不保存
// @Summary      试算回本周期
// @Tags         Amortization
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      models.AmortizationData  true  "成本数据"
// @Success      200  {object}  response.Response{data=models.CalculationResult}
// @Failure      400  {object}  response.Response
// @Router       /amortization/calculate [post]
func (c *AmortizationController) Calculate() {
	var req models.AmortizationData
	if !c.BindJSON(&req) {
		return
	}
	result, err := c.Container.GetAmortizationService().Calculate(req)
	if err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, result)
}

// 7. Charts 图表数据
// @Summary      摊销图表数据
// @Tags         Amortization
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=models.AmortizationCharts}
// @Router       /amortization/charts [get]
func (c *AmortizationController) Charts() {
	charts, err := c.Container.GetAmortizationService().Charts(c.Context.Request.Context())
	if err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, charts)
}

// 8. Unamortized 尚无摊销记录的设备
// @Summary      未录入成本的设备
// @Tags         Amortization
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]models.Device}
// @Router       /amortization/unamortized [get]
func (c *AmortizationController) Unamortized() {
	devices, err := c.Container.GetAmortizationService().UnamortizedDevices(c.Context.Request.Context())
	if err != nil {
		response.FromError(c.Context, err)
		return
	}
	response.Success(c.Context, devices)
}
