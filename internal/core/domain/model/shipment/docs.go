// Package shipment provides the Shipment aggregate and its status lifecycle.
//
// The package includes:
//   - Shipment: the durable record of a parcel moving from sender to recipient
//   - Status: the state machine governing a shipment from creation to a terminal state
//   - HistoryEntry: one append-only record of a status change and who made it
//   - TrackingCode: the human-facing identifier, distinct from the storage id
//   - Party: sender and recipient contact details
//
// Lifecycle:
//
//	PendingPayment -> PaymentConfirmed -> InPreparation -> InTransit -> InRoute -> Delivered
//	       \________________\_________________\________________\___________\______> Cancelled
//
// A shipment is always created in PendingPayment with one history entry.
// Every later change goes through Transition (which enforces the table above)
// or Finalize (which force-sets a terminal status), and both append exactly
// one history entry and bump the last-updated timestamp. The last history
// entry always carries the current status and history timestamps never
// decrease.
package shipment
