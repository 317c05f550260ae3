// Package docs holds the OpenAPI document served under /swagger/; keep it in
// sync with the @Router annotations on the handlers.
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
        "/contact-link": {
            "get": {
                "description": "Deep link de WhatsApp con el saludo del botón flotante.",
                "produces": ["application/json"],
                "tags": ["contact"],
                "summary": "Link de contacto",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/orders.Handoff"}}
                }
            }
        },
        "/orders": {
            "get": {
                "description": "Lista los pedidos confirmados del caché local, en orden de creación.",
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Pedidos guardados",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/orders.CachedOrder"}}},
                    "500": {"description": "internal error", "schema": {"type": "string"}}
                }
            }
        },
        "/services": {
            "get": {
                "description": "Devuelve el catálogo de servicios ofrecidos (id, nombre, precio).",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Listar servicios",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/catalog.Service"}}}
                }
            }
        },
        "/session/fields/errors": {
            "get": {
                "description": "Devuelve las anotaciones de error visibles (campo -> mensaje).",
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Anotaciones de error",
                "parameters": [
                    {"type": "string", "description": "ID de sesión", "name": "X-Session-ID", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/orders.FieldErrors"}}
                }
            }
        },
        "/session/fields/{field}/input": {
            "post": {
                "description": "Quita la anotación de error del campo (el usuario está editando).",
                "tags": ["session"],
                "summary": "Input en campo",
                "parameters": [
                    {"type": "string", "description": "ID de sesión", "name": "X-Session-ID", "in": "header"},
                    {"type": "string", "description": "Nombre del campo", "name": "field", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/orders.errorResponse"}}
                }
            }
        },
        "/session/fields/{field}/validate": {
            "post": {
                "description": "Valida un campo del formulario y anota o limpia su error.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Validar campo (blur)",
                "parameters": [
                    {"type": "string", "description": "ID de sesión", "name": "X-Session-ID", "in": "header"},
                    {"type": "string", "description": "Nombre del campo (petName, phone, email, ...)", "name": "field", "in": "path", "required": true},
                    {"description": "Valor actual del campo", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/orders.validateFieldRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/orders.fieldResponse"}},
                    "400": {"description": "invalid json", "schema": {"type": "string"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/orders.errorResponse"}}
                }
            }
        },
        "/session/notification": {
            "get": {
                "description": "Devuelve el toast visible de la sesión; 204 si no hay ninguno.",
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Notificación visible",
                "parameters": [
                    {"type": "string", "description": "ID de sesión", "name": "X-Session-ID", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/notify.Notification"}},
                    "204": {"description": "No Content"}
                }
            }
        },
        "/session/order": {
            "post": {
                "description": "Valida todos los campos requeridos y exige un servicio seleccionado. Si ambos se cumplen, arma el pedido y devuelve el resumen HTML. Acepta JSON o application/x-www-form-urlencoded.",
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Enviar formulario de pedido",
                "parameters": [
                    {"type": "string", "description": "ID de sesión", "name": "X-Session-ID", "in": "header"},
                    {"description": "Valores del formulario", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/orders.Form"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/orders.submitOrderResponse"}},
                    "400": {"description": "invalid body", "schema": {"type": "string"}},
                    "409": {"description": "sin servicio seleccionado", "schema": {"$ref": "#/definitions/orders.errorResponse"}},
                    "422": {"description": "campos inválidos", "schema": {"$ref": "#/definitions/orders.errorResponse"}}
                }
            },
            "delete": {
                "description": "Cierra el modal y descarta el pedido actual.",
                "tags": ["session"],
                "summary": "Cerrar resumen",
                "parameters": [
                    {"type": "string", "description": "ID de sesión", "name": "X-Session-ID", "in": "header"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/session/order/confirm": {
            "post": {
                "description": "Arma el mensaje del pedido actual y el deep link de WhatsApp que el cliente debe abrir. Cierra el resumen y guarda el pedido en el caché local.",
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Confirmar y enviar por WhatsApp",
                "parameters": [
                    {"type": "string", "description": "ID de sesión", "name": "X-Session-ID", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/orders.handoffResponse"}},
                    "409": {"description": "sin pedido", "schema": {"$ref": "#/definitions/orders.errorResponse"}}
                }
            }
        },
        "/session/order/summary": {
            "get": {
                "description": "Devuelve el fragmento HTML del modal de resumen del pedido actual.",
                "produces": ["text/html"],
                "tags": ["session"],
                "summary": "Resumen del pedido",
                "parameters": [
                    {"type": "string", "description": "ID de sesión", "name": "X-Session-ID", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "fragmento HTML", "schema": {"type": "string"}},
                    "404": {"description": "no order", "schema": {"type": "string"}}
                }
            }
        },
        "/session/reset": {
            "post": {
                "description": "Limpia la selección, el pedido actual y las anotaciones de error de la sesión.",
                "tags": ["session"],
                "summary": "Limpiar formulario",
                "parameters": [
                    {"type": "string", "description": "ID de sesión", "name": "X-Session-ID", "in": "header"}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/session/selection": {
            "post": {
                "description": "Reemplaza la selección de la sesión por el servicio indicado (click en la tarjeta). Muestra un toast de éxito.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Seleccionar servicio",
                "parameters": [
                    {"type": "string", "description": "ID de sesión (alternativa a la cookie petshop_session)", "name": "X-Session-ID", "in": "header"},
                    {"description": "Servicio a seleccionar", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/orders.selectServiceRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/orders.selectionResponse"}},
                    "400": {"description": "invalid json", "schema": {"type": "string"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/orders.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "catalog.Service": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "price": {"type": "number"}
            }
        },
        "notify.Kind": {
            "type": "string",
            "enum": ["success", "error", "warning", "info"]
        },
        "notify.Style": {
            "type": "object",
            "properties": {
                "color": {"type": "string"},
                "icon": {"type": "string"}
            }
        },
        "notify.Notification": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "kind": {"$ref": "#/definitions/notify.Kind"},
                "message": {"type": "string"},
                "style": {"$ref": "#/definitions/notify.Style"},
                "shownAt": {"type": "string"},
                "expiresAt": {"type": "string"}
            }
        },
        "orders.Selection": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "price": {"type": "number"}
            }
        },
        "orders.Pet": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "type": {"type": "string"},
                "breed": {"type": "string"},
                "age": {"type": "string"}
            }
        },
        "orders.Owner": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "phone": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "orders.Schedule": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "time": {"type": "string"}
            }
        },
        "orders.Order": {
            "type": "object",
            "properties": {
                "pet": {"$ref": "#/definitions/orders.Pet"},
                "service": {"$ref": "#/definitions/orders.Selection"},
                "owner": {"$ref": "#/definitions/orders.Owner"},
                "schedule": {"$ref": "#/definitions/orders.Schedule"},
                "observations": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "orders.CachedOrder": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "status": {"type": "string", "enum": ["pending"]},
                "pet": {"$ref": "#/definitions/orders.Pet"},
                "service": {"$ref": "#/definitions/orders.Selection"},
                "owner": {"$ref": "#/definitions/orders.Owner"},
                "schedule": {"$ref": "#/definitions/orders.Schedule"},
                "observations": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "orders.FieldErrors": {
            "type": "object",
            "additionalProperties": {"type": "string"}
        },
        "orders.Form": {
            "type": "object",
            "properties": {
                "petName": {"type": "string"},
                "petType": {"type": "string"},
                "petBreed": {"type": "string"},
                "petAge": {"type": "string"},
                "ownerName": {"type": "string"},
                "phone": {"type": "string"},
                "email": {"type": "string"},
                "preferredDate": {"type": "string"},
                "preferredTime": {"type": "string"},
                "observations": {"type": "string"}
            }
        },
        "orders.Handoff": {
            "type": "object",
            "properties": {
                "url": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "orders.errorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "fields": {"$ref": "#/definitions/orders.FieldErrors"},
                "notification": {"$ref": "#/definitions/notify.Notification"}
            }
        },
        "orders.fieldResponse": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "valid": {"type": "boolean"},
                "error": {"type": "string"}
            }
        },
        "orders.handoffResponse": {
            "type": "object",
            "properties": {
                "url": {"type": "string"},
                "message": {"type": "string"},
                "notification": {"$ref": "#/definitions/notify.Notification"}
            }
        },
        "orders.selectServiceRequest": {
            "type": "object",
            "properties": {
                "serviceId": {"type": "string"}
            }
        },
        "orders.selectionResponse": {
            "type": "object",
            "properties": {
                "selection": {"$ref": "#/definitions/orders.Selection"},
                "notification": {"$ref": "#/definitions/notify.Notification"}
            }
        },
        "orders.submitOrderResponse": {
            "type": "object",
            "properties": {
                "order": {"$ref": "#/definitions/orders.Order"},
                "summaryHtml": {"type": "string"},
                "notification": {"$ref": "#/definitions/notify.Notification"}
            }
        },
        "orders.validateFieldRequest": {
            "type": "object",
            "properties": {
                "value": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "PetShop Orders API",
	Description:      "Selección de servicio, validación del formulario, resumen del pedido y handoff a WhatsApp.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
