package notifier

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/mikimas/truster/internal/domain/model"
)

// The message keeps the structure the administrator already reviews daily:
// product, customer, shipping address and notes, with placeholders for
// fields the customer left empty.
const emailTemplate = `<div style="font-family: Arial, sans-serif; background:#f3f4f6; padding:40px;">
  <div style="max-width:600px; background:white; margin:0 auto; border-radius:10px; padding:30px; box-shadow:0 4px 16px rgba(0,0,0,0.1);">

    <div style="text-align:center; margin-bottom:30px;">
      <h1 style="color:#2563eb; margin:0; font-size:28px;">📦 Nuevo pedido recibido</h1>
      <p style="color:#6b7280; font-size:14px; margin-top:10px;">
        Un cliente ha enviado una nueva solicitud de compra segura.
      </p>
    </div>

    <h2 style="font-size:20px; color:#111827; border-left:4px solid #2563eb; padding-left:10px; margin-top:30px;">Producto</h2>
    <table style="width:100%; margin-top:10px;">
      <tr>
        <td style="padding:6px 0; color:#6b7280;">URL:</td>
        <td><a href="{{.ProductURL}}" style="color:#2563eb;">{{.ProductURL}}</a></td>
      </tr>
      <tr>
        <td style="padding:6px 0; color:#6b7280;">Información extra:</td>
        <td>{{fallback .ExtraInfo "Ninguna"}}</td>
      </tr>
    </table>

    <h2 style="font-size:20px; color:#111827; border-left:4px solid #2563eb; padding-left:10px; margin-top:30px;">Datos del cliente</h2>
    <table style="width:100%; margin-top:10px;">
      <tr>
        <td style="padding:6px 0; color:#6b7280;">Nombre:</td>
        <td>{{.FullName}}</td>
      </tr>
      <tr>
        <td style="padding:6px 0; color:#6b7280;">DNI:</td>
        <td>{{fallback .DNI "No indicado"}}</td>
      </tr>
      <tr>
        <td style="padding:6px 0; color:#6b7280;">Email:</td>
        <td>{{.Email}}</td>
      </tr>
      <tr>
        <td style="padding:6px 0; color:#6b7280;">Teléfono:</td>
        <td>{{fallback .Phone "No indicado"}}</td>
      </tr>
    </table>

    <h2 style="font-size:20px; color:#111827; border-left:4px solid #2563eb; padding-left:10px; margin-top:30px;">Dirección de envío</h2>
    <table style="width:100%; margin-top:10px;">
      <tr>
        <td style="padding:6px 0; color:#6b7280;">Dirección:</td>
        <td>{{.AddressLine1}}</td>
      </tr>
      <tr>
        <td style="padding:6px 0; color:#6b7280;">Info adicional:</td>
        <td>{{fallback .AddressLine2 "Ninguna"}}</td>
      </tr>
      <tr>
        <td style="padding:6px 0; color:#6b7280;">Ciudad:</td>
        <td>{{.City}}</td>
      </tr>
      <tr>
        <td style="padding:6px 0; color:#6b7280;">Código postal:</td>
        <td>{{.PostalCode}}</td>
      </tr>
      <tr>
        <td style="padding:6px 0; color:#6b7280;">Provincia:</td>
        <td>{{fallback .Province "No indicada"}}</td>
      </tr>
    </table>

    <h2 style="font-size:20px; color:#111827; border-left:4px solid #2563eb; padding-left:10px; margin-top:30px;">Notas adicionales</h2>
    <div style="background:#f9fafb; padding:15px; border-radius:6px; font-size:14px; color:#374151; margin-top:10px;">
      {{fallback .Notes "El cliente no ha añadido notas."}}
    </div>

    <p style="text-align:center; color:#9ca3af; font-size:12px; margin-top:40px;">
      Pedido recibido el {{.ReceivedAt}}
    </p>

  </div>
</div>`

var emailTmpl = template.Must(template.New("order-email").Funcs(template.FuncMap{
	"fallback": func(value, placeholder string) string {
		if strings.TrimSpace(value) == "" {
			return placeholder
		}
		return value
	},
}).Parse(emailTemplate))

type emailView struct {
	model.Order
	ReceivedAt string
}

// RenderOrderEmail renders the HTML notification body for the order.
func RenderOrderEmail(order *model.Order) (string, error) {
	view := emailView{
		Order:      *order,
		ReceivedAt: order.CreatedAt.Format("02/01/2006 15:04:05"),
	}
	var sb strings.Builder
	if err := emailTmpl.Execute(&sb, view); err != nil {
		return "", fmt.Errorf("render order email: %w", err)
	}
	return sb.String(), nil
}

// Subject returns the notification subject line for the order.
func Subject(order *model.Order) string {
	return fmt.Sprintf("Nuevo pedido recibido (#%d)", order.ID)
}
