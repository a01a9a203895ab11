// Package docs 注册 Swagger 文档，内容与 controllers 中的 swag 注解一一对应，修改注解后需同步更新
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/amortization": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Amortization"
                ],
                "summary": "摊销记录列表",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.AmortizationView"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/amortization/calculate": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Amortization"
                ],
                "summary": "试算回本周期",
                "parameters": [
                    {
                        "description": "成本数据",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.AmortizationData"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.CalculationResult"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/amortization/charts": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Amortization"
                ],
                "summary": "摊销图表数据",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.AmortizationCharts"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/amortization/summary": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Amortization"
                ],
                "summary": "摊销汇总",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.AmortizationSummary"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/amortization/unamortized": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Amortization"
                ],
                "summary": "未录入成本的设备",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.Device"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/amortization/{deviceId}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Amortization"
                ],
                "summary": "设备摊销记录",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "设备ID",
                        "name": "deviceId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.AmortizationView"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "同时把成本数据写回设备",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Amortization"
                ],
                "summary": "保存摊销记录",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "设备ID",
                        "name": "deviceId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "成本数据",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.AmortizationData"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.AmortizationView"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Amortization"
                ],
                "summary": "删除摊销记录",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "设备ID",
                        "name": "deviceId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/auth/login": {
            "post": {
                "description": "Verify username and password, open a session and return a JWT bound to it",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Auth"
                ],
                "summary": "User Login",
                "parameters": [
                    {
                        "description": "Login request parameters",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.LoginResult"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "429": {
                        "description": "Too Many Requests",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/auth/logout": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Invalidate the session bound to the current token",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Auth"
                ],
                "summary": "Logout",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/auth/me": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Auth"
                ],
                "summary": "Current user",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.User"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/away-mode": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "AwayMode"
                ],
                "summary": "离家模式状态",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.AwayModeStatus"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/away-mode/activate": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "保存设备状态后关灯、锁门并调节温度",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "AwayMode"
                ],
                "summary": "启用离家模式",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.AwayModeResult"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/away-mode/deactivate": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "AwayMode"
                ],
                "summary": "关闭离家模式",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.AwayModeResult"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/away-mode/options": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "目标温度会被限制在 16-28°C，缺省为 21°C",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "AwayMode"
                ],
                "summary": "更新离家模式选项",
                "parameters": [
                    {
                        "description": "选项",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.AwayModeOptions"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.AwayModeOptions"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/climate/evaluate": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Climate"
                ],
                "summary": "执行自动温控",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.ClimateReport"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/climate/status": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Climate"
                ],
                "summary": "温控状态",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.ClimateStatus"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/devices": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "可按类型筛选",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Device"
                ],
                "summary": "获取设备列表",
                "parameters": [
                    {
                        "type": "string",
                        "description": "设备类型",
                        "name": "type",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.Device"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "按类型补齐默认属性并加入目标房间",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Device"
                ],
                "summary": "创建设备",
                "parameters": [
                    {
                        "description": "设备信息，id 由服务端分配",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.Device"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Device"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/devices/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Device"
                ],
                "summary": "获取设备详情",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "设备ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Device"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "修改 roomId 时设备会移动到新房间",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Device"
                ],
                "summary": "更新设备",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "设备ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "需要修改的字段",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.DevicePatch"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Device"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Device"
                ],
                "summary": "删除设备",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "设备ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/devices/{id}/alarm/reset": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "DeviceControl"
                ],
                "summary": "复位烟雾报警",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "设备ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Device"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/devices/{id}/alarm/test": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "DeviceControl"
                ],
                "summary": "测试烟雾报警",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "设备ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Device"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/devices/{id}/auto-light": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "DeviceControl"
                ],
                "summary": "设置自动灯光",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "设备ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "是否启用",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.AutoLightRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Device"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/devices/{id}/brightness": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "DeviceControl"
                ],
                "summary": "设置灯光亮度",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "设备ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "亮度 0-100",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.BrightnessRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Device"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/devices/{id}/color": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "DeviceControl"
                ],
                "summary": "设置灯光颜色",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "设备ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "十六进制颜色",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.ColorRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Device"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/devices/{id}/consumption": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Energy"
                ],
                "summary": "设备用电数据",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "设备ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "default": "weekly",
                        "description": "weekly | monthly",
                        "name": "period",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.DeviceConsumptionReport"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/devices/{id}/lock": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "门打开时不能上锁",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "DeviceControl"
                ],
                "summary": "切换门锁",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "设备ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Device"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/devices/{id}/motion": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "启用自动灯光时会打开同房间的灯，一段时间后自动复位",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "DeviceControl"
                ],
                "summary": "模拟运动",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "设备ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Device"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "DeviceControl"
                ],
                "summary": "清除运动状态",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "设备ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Device"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/devices/{id}/open": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "DeviceControl"
                ],
                "summary": "切换门窗开关",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "设备ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Device"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/devices/{id}/override": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "设备进入手动模式，自动温控不再改变其状态",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Climate"
                ],
                "summary": "手动控制温控设备",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "设备ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "目标状态",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.OverrideRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Device"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Climate"
                ],
                "summary": "恢复自动温控",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "设备ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.ClimateReport"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/devices/{id}/power": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "温控设备切换后会标记为手动控制",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "DeviceControl"
                ],
                "summary": "切换设备电源",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "设备ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Device"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/devices/{id}/room": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Device"
                ],
                "summary": "获取设备所在房间",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "设备ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Room"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/energy/consumption": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Energy"
                ],
                "summary": "设备类型用电数据",
                "parameters": [
                    {
                        "type": "string",
                        "description": "设备类型",
                        "name": "type",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "default": "weekly",
                        "description": "weekly | monthly",
                        "name": "period",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/controllers.TypeConsumptionResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/energy/historical": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "week 为 7 天，month 为 30 天，year 为 12 个月",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Energy"
                ],
                "summary": "历史能源数据",
                "parameters": [
                    {
                        "type": "string",
                        "default": "week",
                        "description": "week | month | year",
                        "name": "period",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/controllers.HistoricalResponse"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/energy/realtime": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Energy"
                ],
                "summary": "实时能源分布",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.RealtimeEnergyData"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/home": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "返回全部房间和设备",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Home"
                ],
                "summary": "获取家居数据",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.HomeData"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/home/reload": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Home"
                ],
                "summary": "重新加载家居数据",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.HomeData"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/home/reset": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Home"
                ],
                "summary": "重置家居数据",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.HomeData"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/mqtt/devices/{id}/command": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "支持 toggle_power, set_brightness, set_color, toggle_lock, toggle_open, test_alarm, reset_alarm",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "MQTT"
                ],
                "summary": "执行设备命令",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "设备ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "命令",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.CommandRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Device"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/mqtt/status": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "MQTT"
                ],
                "summary": "MQTT 状态",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/services.MQTTStatus"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/ping": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/preferences": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Preferences"
                ],
                "summary": "获取界面偏好",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Preferences"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Preferences"
                ],
                "summary": "保存界面偏好",
                "parameters": [
                    {
                        "description": "偏好",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.Preferences"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Preferences"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/rooms": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Room"
                ],
                "summary": "获取房间列表",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.Room"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "新房间没有设备，类型缺省为 other",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Room"
                ],
                "summary": "创建房间",
                "parameters": [
                    {
                        "description": "房间信息",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.RoomRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Room"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/rooms/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Room"
                ],
                "summary": "获取房间详情",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "房间ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Room"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Room"
                ],
                "summary": "更新房间",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "房间ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "需要修改的字段",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.RoomPatch"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Room"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Room"
                ],
                "summary": "删除房间",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "房间ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/rooms/{id}/devices": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Room"
                ],
                "summary": "获取房间设备",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "房间ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.Device"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/rooms/{id}/temperature-range": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Climate"
                ],
                "summary": "设置房间温度区间",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "房间ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "温度区间",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.TemperatureRange"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.ClimateReport"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/stream": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "浏览器无法设置请求头时可用 token 查询参数认证",
                "tags": [
                    "Stream"
                ],
                "summary": "事件流",
                "parameters": [
                    {
                        "type": "string",
                        "description": "JWT",
                        "name": "token",
                        "in": "query"
                    }
                ],
                "responses": {}
            }
        },
        "/users": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "返回所有账户，不包含密码哈希",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "User"
                ],
                "summary": "获取用户列表",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/models.User"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "用户名不可重复，角色默认为 user",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "User"
                ],
                "summary": "创建用户",
                "parameters": [
                    {
                        "description": "用户信息",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.RegisterUserData"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.User"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/users/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "User"
                ],
                "summary": "获取用户详情",
                "parameters": [
                    {
                        "type": "string",
                        "description": "用户ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.User"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "不能删除当前登录的账户",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "User"
                ],
                "summary": "删除用户",
                "parameters": [
                    {
                        "type": "string",
                        "description": "用户ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        },
        "/weather": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "同一小时内返回相同的模拟天气，可通过 at 指定时间 (RFC3339)",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Weather"
                ],
                "summary": "当前天气",
                "parameters": [
                    {
                        "type": "string",
                        "description": "时间",
                        "name": "at",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Response"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/models.Weather"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "controllers.AutoLightRequest": {
            "type": "object",
            "required": [
                "enabled"
            ],
            "properties": {
                "enabled": {
                    "type": "boolean",
                    "example": true
                }
            }
        },
        "controllers.BrightnessRequest": {
            "type": "object",
            "required": [
                "brightness"
            ],
            "properties": {
                "brightness": {
                    "type": "integer",
                    "example": 80
                }
            }
        },
        "controllers.ColorRequest": {
            "type": "object",
            "required": [
                "color"
            ],
            "properties": {
                "color": {
                    "type": "string",
                    "example": "#FFD700"
                }
            }
        },
        "controllers.CommandRequest": {
            "type": "object",
            "required": [
                "action"
            ],
            "properties": {
                "action": {
                    "type": "string",
                    "example": "set_brightness"
                },
                "brightness": {
                    "type": "integer",
                    "example": 60
                },
                "color": {
                    "type": "string",
                    "example": "#FFFFFF"
                }
            }
        },
        "controllers.HistoricalResponse": {
            "type": "object",
            "properties": {
                "averages": {
                    "$ref": "#/definitions/models.EnergyAverages"
                },
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.EnergyDataPoint"
                    }
                },
                "period": {
                    "type": "string",
                    "example": "week"
                }
            }
        },
        "controllers.LoginRequest": {
            "type": "object",
            "required": [
                "password",
                "username"
            ],
            "properties": {
                "password": {
                    "type": "string",
                    "example": "admin123"
                },
                "username": {
                    "type": "string",
                    "example": "admin"
                }
            }
        },
        "controllers.OverrideRequest": {
            "type": "object",
            "required": [
                "status"
            ],
            "properties": {
                "status": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.DeviceStatus"
                        }
                    ],
                    "example": "Online"
                }
            }
        },
        "controllers.RoomRequest": {
            "type": "object",
            "required": [
                "name"
            ],
            "properties": {
                "name": {
                    "type": "string",
                    "example": "Office"
                },
                "temperatureRange": {
                    "$ref": "#/definitions/models.TemperatureRange"
                },
                "type": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.RoomType"
                        }
                    ],
                    "example": "office"
                }
            }
        },
        "controllers.TypeConsumptionResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.DeviceConsumptionData"
                    }
                },
                "period": {
                    "type": "string",
                    "example": "weekly"
                },
                "stats": {
                    "$ref": "#/definitions/models.ConsumptionStats"
                },
                "type": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.DeviceType"
                        }
                    ],
                    "example": "light"
                }
            }
        },
        "models.AmortizationCharts": {
            "type": "object",
            "properties": {
                "costs": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.CostChartPoint"
                    }
                },
                "distribution": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.ShareChartPoint"
                    }
                },
                "payback": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.PaybackChartPoint"
                    }
                },
                "savings": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.SavingsChartPoint"
                    }
                }
            }
        },
        "models.AmortizationData": {
            "type": "object",
            "properties": {
                "deviceId": {
                    "type": "integer",
                    "example": 2
                },
                "initialCost": {
                    "type": "number",
                    "example": 250
                },
                "installationCost": {
                    "type": "number",
                    "example": 80
                },
                "lifespan": {
                    "type": "integer",
                    "description": "月",
                    "example": 84
                },
                "monthlySavings": {
                    "type": "number",
                    "example": 15
                },
                "notes": {
                    "type": "string"
                }
            }
        },
        "models.AmortizationSummary": {
            "type": "object",
            "properties": {
                "amortizedDevices": {
                    "type": "integer"
                },
                "averagePaybackPeriod": {
                    "type": "number"
                },
                "totalDevices": {
                    "type": "integer"
                },
                "totalInvestment": {
                    "type": "number"
                },
                "totalMonthlySavings": {
                    "type": "number"
                }
            }
        },
        "models.AmortizationView": {
            "type": "object",
            "properties": {
                "deviceId": {
                    "type": "integer",
                    "example": 2
                },
                "deviceName": {
                    "type": "string"
                },
                "deviceType": {
                    "type": "string"
                },
                "initialCost": {
                    "type": "number",
                    "example": 250
                },
                "installationCost": {
                    "type": "number",
                    "example": 80
                },
                "isAmortized": {
                    "type": "boolean"
                },
                "lifespan": {
                    "type": "integer",
                    "description": "月",
                    "example": 84
                },
                "monthlySavings": {
                    "type": "number",
                    "example": 15
                },
                "notes": {
                    "type": "string"
                },
                "paybackPeriod": {
                    "type": "number"
                },
                "paybackYears": {
                    "type": "number"
                },
                "roomName": {
                    "type": "string"
                },
                "totalCost": {
                    "type": "number"
                }
            }
        },
        "models.AwayModeOptions": {
            "type": "object",
            "properties": {
                "lockDoors": {
                    "type": "boolean",
                    "example": true
                },
                "setTemperature": {
                    "type": "boolean",
                    "example": true
                },
                "targetTemperature": {
                    "type": "number",
                    "example": 21
                },
                "turnOffLights": {
                    "type": "boolean",
                    "example": true
                }
            }
        },
        "models.AwayModeResult": {
            "type": "object",
            "properties": {
                "active": {
                    "type": "boolean"
                },
                "count": {
                    "type": "integer"
                },
                "detail": {
                    "type": "string"
                }
            }
        },
        "models.AwayModeStatus": {
            "type": "object",
            "properties": {
                "active": {
                    "type": "boolean"
                },
                "options": {
                    "$ref": "#/definitions/models.AwayModeOptions"
                },
                "savedDeviceCount": {
                    "type": "integer"
                },
                "savedRoomCount": {
                    "type": "integer"
                }
            }
        },
        "models.CalculationResult": {
            "type": "object",
            "properties": {
                "annualSavings": {
                    "type": "number"
                },
                "isAmortized": {
                    "type": "boolean"
                },
                "lifetimeValue": {
                    "type": "number"
                },
                "paybackPeriod": {
                    "type": "number"
                },
                "paybackYears": {
                    "type": "number"
                },
                "totalCost": {
                    "type": "number"
                }
            }
        },
        "models.ClimateChange": {
            "type": "object",
            "properties": {
                "deviceId": {
                    "type": "integer"
                },
                "from": {
                    "$ref": "#/definitions/models.DeviceStatus"
                },
                "reason": {
                    "type": "string"
                },
                "roomId": {
                    "type": "integer"
                },
                "to": {
                    "$ref": "#/definitions/models.DeviceStatus"
                },
                "type": {
                    "$ref": "#/definitions/models.DeviceType"
                }
            }
        },
        "models.ClimateReport": {
            "type": "object",
            "properties": {
                "changes": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.ClimateChange"
                    }
                },
                "skipped": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    },
                    "description": "手动控制而跳过的设备"
                }
            }
        },
        "models.ClimateStatus": {
            "type": "object",
            "properties": {
                "activeACCount": {
                    "type": "integer"
                },
                "activeHeatCount": {
                    "type": "integer"
                },
                "openWindowCount": {
                    "type": "integer"
                },
                "rooms": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.RoomClimateStatus"
                    }
                }
            }
        },
        "models.ConsumptionBreakdown": {
            "type": "object",
            "properties": {
                "offPeak": {
                    "type": "number"
                },
                "peak": {
                    "type": "number"
                },
                "standby": {
                    "type": "number"
                }
            }
        },
        "models.ConsumptionStats": {
            "type": "object",
            "properties": {
                "average": {
                    "type": "number"
                },
                "breakdown": {
                    "$ref": "#/definitions/models.ConsumptionBreakdown"
                },
                "maxConsumption": {
                    "type": "number"
                },
                "peakPeriod": {
                    "type": "string"
                },
                "total": {
                    "type": "number"
                }
            }
        },
        "models.CostChartPoint": {
            "type": "object",
            "properties": {
                "initialCost": {
                    "type": "number"
                },
                "installationCost": {
                    "type": "number"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "models.Device": {
            "type": "object",
            "properties": {
                "alarmActive": {
                    "type": "boolean"
                },
                "autoLightControl": {
                    "type": "boolean"
                },
                "batteryLevel": {
                    "type": "string",
                    "example": "85%"
                },
                "brightness": {
                    "type": "integer"
                },
                "color": {
                    "type": "string"
                },
                "firmwareVersion": {
                    "type": "string",
                    "example": "2.1.4"
                },
                "id": {
                    "type": "integer",
                    "example": 1
                },
                "initialCost": {
                    "type": "number"
                },
                "installationCost": {
                    "type": "number"
                },
                "installationDate": {
                    "type": "string",
                    "example": "2024-03-12"
                },
                "ipAddress": {
                    "type": "string",
                    "example": "192.168.1.23"
                },
                "isLocked": {
                    "type": "boolean"
                },
                "isOpen": {
                    "type": "boolean"
                },
                "lastActive": {
                    "type": "string",
                    "example": "Just now"
                },
                "lastMotionDetected": {
                    "type": "string"
                },
                "lifespan": {
                    "type": "integer",
                    "description": "月"
                },
                "macAddress": {
                    "type": "string"
                },
                "manualOverride": {
                    "type": "boolean"
                },
                "manufacturer": {
                    "type": "string"
                },
                "model": {
                    "type": "string"
                },
                "monthlySavings": {
                    "type": "number"
                },
                "motionDetected": {
                    "type": "boolean"
                },
                "name": {
                    "type": "string",
                    "example": "Ceiling Light"
                },
                "powerConsumption": {
                    "type": "string",
                    "example": "9W"
                },
                "roomId": {
                    "type": "integer",
                    "example": 1
                },
                "serialNumber": {
                    "type": "string",
                    "example": "TH-22.5-0001"
                },
                "smokeDetected": {
                    "type": "boolean"
                },
                "status": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.DeviceStatus"
                        }
                    ],
                    "example": "Online"
                },
                "temperature": {
                    "type": "number"
                },
                "type": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.DeviceType"
                        }
                    ],
                    "example": "light"
                }
            }
        },
        "models.DeviceConsumptionData": {
            "type": "object",
            "properties": {
                "offPeak": {
                    "type": "number"
                },
                "peak": {
                    "type": "number"
                },
                "period": {
                    "type": "string"
                },
                "standby": {
                    "type": "number"
                },
                "total": {
                    "type": "number"
                }
            }
        },
        "models.DeviceConsumptionReport": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.DeviceConsumptionData"
                    }
                },
                "deviceId": {
                    "type": "integer"
                },
                "period": {
                    "type": "string"
                },
                "stats": {
                    "$ref": "#/definitions/models.ConsumptionStats"
                },
                "type": {
                    "$ref": "#/definitions/models.DeviceType"
                }
            }
        },
        "models.DevicePatch": {
            "type": "object",
            "properties": {
                "alarmActive": {
                    "type": "boolean"
                },
                "autoLightControl": {
                    "type": "boolean"
                },
                "batteryLevel": {
                    "type": "string"
                },
                "brightness": {
                    "type": "integer"
                },
                "color": {
                    "type": "string"
                },
                "firmwareVersion": {
                    "type": "string"
                },
                "initialCost": {
                    "type": "number"
                },
                "installationCost": {
                    "type": "number"
                },
                "installationDate": {
                    "type": "string"
                },
                "ipAddress": {
                    "type": "string"
                },
                "isLocked": {
                    "type": "boolean"
                },
                "isOpen": {
                    "type": "boolean"
                },
                "lastActive": {
                    "type": "string"
                },
                "lastMotionDetected": {
                    "type": "string"
                },
                "lifespan": {
                    "type": "integer"
                },
                "macAddress": {
                    "type": "string"
                },
                "manualOverride": {
                    "type": "boolean"
                },
                "manufacturer": {
                    "type": "string"
                },
                "model": {
                    "type": "string"
                },
                "monthlySavings": {
                    "type": "number"
                },
                "motionDetected": {
                    "type": "boolean"
                },
                "name": {
                    "type": "string"
                },
                "powerConsumption": {
                    "type": "string"
                },
                "roomId": {
                    "type": "integer"
                },
                "serialNumber": {
                    "type": "string"
                },
                "smokeDetected": {
                    "type": "boolean"
                },
                "status": {
                    "$ref": "#/definitions/models.DeviceStatus"
                },
                "temperature": {
                    "type": "number"
                }
            }
        },
        "models.DeviceStatus": {
            "type": "string",
            "enum": [
                "Online",
                "Offline"
            ],
            "x-enum-varnames": [
                "StatusOnline",
                "StatusOffline"
            ]
        },
        "models.DeviceType": {
            "type": "string",
            "enum": [
                "light",
                "outlet",
                "thermostat",
                "humidity",
                "door",
                "window",
                "energy",
                "ac",
                "heating",
                "smoke_detector",
                "motion_sensor",
                "other"
            ],
            "x-enum-varnames": [
                "DeviceTypeLight",
                "DeviceTypeOutlet",
                "DeviceTypeThermostat",
                "DeviceTypeHumidity",
                "DeviceTypeDoor",
                "DeviceTypeWindow",
                "DeviceTypeEnergy",
                "DeviceTypeAC",
                "DeviceTypeHeating",
                "DeviceTypeSmokeDetector",
                "DeviceTypeMotionSensor",
                "DeviceTypeOther"
            ]
        },
        "models.DevicesView": {
            "type": "string",
            "enum": [
                "grid",
                "list",
                "room"
            ],
            "x-enum-varnames": [
                "DevicesViewGrid",
                "DevicesViewList",
                "DevicesViewRoom"
            ]
        },
        "models.EnergyAverages": {
            "type": "object",
            "properties": {
                "battery": {
                    "type": "number"
                },
                "consumption": {
                    "type": "number"
                },
                "feedIn": {
                    "type": "number"
                },
                "grid": {
                    "$ref": "#/definitions/models.PowerShare"
                },
                "production": {
                    "type": "number"
                },
                "solar": {
                    "$ref": "#/definitions/models.PowerShare"
                }
            }
        },
        "models.EnergyDataPoint": {
            "type": "object",
            "properties": {
                "battery": {
                    "type": "number",
                    "description": "%"
                },
                "consumption": {
                    "type": "number",
                    "description": "kWh"
                },
                "date": {
                    "type": "string",
                    "example": "03.05"
                },
                "feedIn": {
                    "type": "number",
                    "description": "kWh"
                },
                "production": {
                    "type": "number",
                    "description": "kWh"
                }
            }
        },
        "models.HomeData": {
            "type": "object",
            "properties": {
                "devices": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Device"
                    }
                },
                "rooms": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Room"
                    }
                }
            }
        },
        "models.LoginResult": {
            "type": "object",
            "properties": {
                "expiresAt": {
                    "type": "string"
                },
                "token": {
                    "type": "string"
                },
                "user": {
                    "$ref": "#/definitions/models.User"
                }
            }
        },
        "models.PaybackChartPoint": {
            "type": "object",
            "properties": {
                "lifespanYears": {
                    "type": "number"
                },
                "name": {
                    "type": "string"
                },
                "paybackYears": {
                    "type": "number"
                }
            }
        },
        "models.PowerShare": {
            "type": "object",
            "properties": {
                "kw": {
                    "type": "number"
                },
                "percentage": {
                    "type": "number"
                }
            }
        },
        "models.Preferences": {
            "type": "object",
            "properties": {
                "dashboardCards": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "devicesView": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.DevicesView"
                        }
                    ],
                    "example": "grid"
                },
                "theme": {
                    "type": "string",
                    "example": "system"
                }
            }
        },
        "models.RealtimeEnergyData": {
            "type": "object",
            "properties": {
                "batteryLevel": {
                    "type": "object",
                    "properties": {
                        "percentage": {
                            "type": "number"
                        }
                    }
                },
                "gridConsumption": {
                    "$ref": "#/definitions/models.PowerShare"
                },
                "gridFeedIn": {
                    "type": "object",
                    "properties": {
                        "kw": {
                            "type": "number"
                        }
                    }
                },
                "solarConsumption": {
                    "$ref": "#/definitions/models.PowerShare"
                }
            }
        },
        "models.RegisterUserData": {
            "type": "object",
            "required": [
                "password",
                "username"
            ],
            "properties": {
                "email": {
                    "type": "string",
                    "example": "alice@example.com"
                },
                "name": {
                    "type": "string",
                    "example": "Alice"
                },
                "password": {
                    "type": "string",
                    "example": "secret123"
                },
                "role": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.Role"
                        }
                    ],
                    "example": "user"
                },
                "username": {
                    "type": "string",
                    "example": "alice"
                }
            }
        },
        "models.Role": {
            "type": "string",
            "enum": [
                "admin",
                "user"
            ],
            "x-enum-varnames": [
                "RoleAdmin",
                "RoleUser"
            ]
        },
        "models.Room": {
            "type": "object",
            "properties": {
                "devices": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "id": {
                    "type": "integer",
                    "example": 1
                },
                "name": {
                    "type": "string",
                    "example": "Living Room"
                },
                "temperatureRange": {
                    "$ref": "#/definitions/models.TemperatureRange"
                },
                "type": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.RoomType"
                        }
                    ],
                    "example": "living"
                }
            }
        },
        "models.RoomClimateStatus": {
            "type": "object",
            "properties": {
                "advisories": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "hasActiveAC": {
                    "type": "boolean"
                },
                "hasActiveHeating": {
                    "type": "boolean"
                },
                "hasOpenWindow": {
                    "type": "boolean"
                },
                "range": {
                    "$ref": "#/definitions/models.TemperatureRange"
                },
                "roomId": {
                    "type": "integer"
                },
                "roomName": {
                    "type": "string"
                },
                "shouldCool": {
                    "type": "boolean"
                },
                "shouldHeat": {
                    "type": "boolean"
                },
                "temperature": {
                    "type": "number"
                }
            }
        },
        "models.RoomPatch": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "temperatureRange": {
                    "$ref": "#/definitions/models.TemperatureRange"
                },
                "type": {
                    "$ref": "#/definitions/models.RoomType"
                }
            }
        },
        "models.RoomType": {
            "type": "string",
            "enum": [
                "living",
                "bedroom",
                "kitchen",
                "bathroom",
                "garage",
                "entrance",
                "other"
            ],
            "x-enum-varnames": [
                "RoomTypeLiving",
                "RoomTypeBedroom",
                "RoomTypeKitchen",
                "RoomTypeBathroom",
                "RoomTypeGarage",
                "RoomTypeEntrance",
                "RoomTypeOther"
            ]
        },
        "models.SavingsChartPoint": {
            "type": "object",
            "properties": {
                "annualSavings": {
                    "type": "number"
                },
                "monthlySavings": {
                    "type": "number"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "models.ShareChartPoint": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "percentage": {
                    "type": "number"
                },
                "value": {
                    "type": "number"
                }
            }
        },
        "models.TemperatureRange": {
            "type": "object",
            "properties": {
                "max": {
                    "type": "number",
                    "example": 24
                },
                "min": {
                    "type": "number",
                    "example": 20
                }
            }
        },
        "models.User": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "type": "string"
                },
                "email": {
                    "type": "string",
                    "example": "admin@example.com"
                },
                "id": {
                    "type": "string",
                    "example": "1"
                },
                "name": {
                    "type": "string",
                    "example": "Administrator"
                },
                "role": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.Role"
                        }
                    ],
                    "example": "admin"
                },
                "username": {
                    "type": "string",
                    "example": "admin"
                }
            }
        },
        "models.Weather": {
            "type": "object",
            "properties": {
                "cloudCover": {
                    "type": "number"
                },
                "condition": {
                    "$ref": "#/definitions/models.WeatherCondition"
                },
                "forecast": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.WeatherForecast"
                    }
                },
                "humidity": {
                    "type": "number"
                },
                "season": {
                    "type": "string"
                },
                "solarRadiation": {
                    "type": "number"
                },
                "temperature": {
                    "type": "number"
                },
                "windSpeed": {
                    "type": "number"
                }
            }
        },
        "models.WeatherCondition": {
            "type": "string",
            "enum": [
                "sunny",
                "partly-cloudy",
                "cloudy",
                "rainy",
                "stormy"
            ],
            "x-enum-varnames": [
                "ConditionSunny",
                "ConditionPartlyCloudy",
                "ConditionCloudy",
                "ConditionRainy",
                "ConditionStormy"
            ]
        },
        "models.WeatherForecast": {
            "type": "object",
            "properties": {
                "condition": {
                    "$ref": "#/definitions/models.WeatherCondition"
                },
                "hour": {
                    "type": "integer"
                },
                "productionImpact": {
                    "type": "number",
                    "description": "0-100 %"
                },
                "solarRadiation": {
                    "type": "number",
                    "description": "W/m²"
                },
                "temperature": {
                    "type": "number"
                }
            }
        },
        "response.Response": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "integer"
                },
                "data": {},
                "message": {
                    "type": "string"
                }
            }
        },
        "services.MQTTStatus": {
            "type": "object",
            "properties": {
                "broker": {
                    "type": "string"
                },
                "connected": {
                    "type": "boolean"
                },
                "enabled": {
                    "type": "boolean"
                },
                "topicPrefix": {
                    "type": "string"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Enter the token with the ` + "`" + `Bearer ` + "`" + ` prefix",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Smart Home Dashboard API",
	Description:      "Rooms, devices, climate automation, away mode, amortization, energy and weather for a smart home dashboard",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
