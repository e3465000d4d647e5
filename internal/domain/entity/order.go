package entity

import (
	"fmt"
	"strings"
)

// OrderDraft is the order being assembled by the requester flow. Every field
// defaults to the empty string so the draft is always structurally valid; the
// remote service is authoritative for content validation. Only IIN and
// RequestNumber are required client-side before submission.
type OrderDraft struct {
	Identity       Identity `validate:"required"`
	Recipient      Recipient
	Address        DeliveryAddress
	Provider       string // Courier provider chosen by the requester.
	Instructions   string // Free-text instructions for the courier.
	TrustedFaceIIN string // IIN of a trusted representative, empty if none.
}

// ConfirmedOrder identifies a successfully created order for the rest of the
// lifecycle. Immutable once returned by the creation endpoint.
type ConfirmedOrder struct {
	OrderID    int    `json:"orderId"`
	BranchName string `json:"branchName"`
	Price      int    `json:"price"`    // Delivery price in KZT.
	Time       int    `json:"time"`     // Estimated delivery time in minutes.
	Distance   int    `json:"distance"` // Delivery distance in meters.
}

// OrderListing is the courier-facing order record as served by the list
// endpoint. The client never mutates a listing locally: accept and pay are
// round-tripped through the server and the list is refetched afterwards.
type OrderListing struct {
	ID                int    `json:"id"`
	IIN               string `json:"iin"`
	RequestID         string `json:"requestId"`
	ServiceName       string `json:"serviceName"`
	OrganizationCode  string `json:"organizationCode"`
	OrganizationName  string `json:"organizationName"`
	RecipientName     string `json:"recipientName"`
	RecipientSurname  string `json:"recipientSurname"`
	RecipientPhone    string `json:"recipientPhone"`
	Region            string `json:"region"`
	City              string `json:"city"`
	Street            string `json:"street"`
	House             string `json:"house"`
	Entrance          string `json:"entrance"`
	Floor             string `json:"floor"`
	Corpus            string `json:"corpus"`
	CourierPhone      string `json:"courierPhone"`
	AdditionalData    string `json:"additionalData"`
	TrustedFaceIIN    string `json:"trustedFaceIin"`
	DeliveryServiceID int    `json:"deliveryServiceId"`
	DeliveryPrice     int    `json:"deliveryPrice"`
	CourierIIN        string `json:"courierIin"`
	Status            string `json:"status"`
}

// DisplayAddress renders the delivery destination the way the courier board
// shows it: "region, city, street house".
func (o OrderListing) DisplayAddress() string {
	return fmt.Sprintf("%s, %s, %s %s", o.Region, o.City, o.Street, o.House)
}

// RecipientFullName joins the recipient surname and name for display,
// tolerating records where one of the parts is missing.
func (o OrderListing) RecipientFullName() string {
	return strings.TrimSpace(o.RecipientSurname + " " + o.RecipientName)
}
