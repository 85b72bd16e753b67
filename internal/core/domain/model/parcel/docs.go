// Package parcel provides domain entities and business logic for package
// tracking in the mailroom system. It implements the Parcel aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Parcel: The aggregate root that manages parcel identity, intake attributes, and lifecycle
//   - Status: A state machine that enforces valid status transitions
//
// Key business rules:
//   - Parcels require a tracking number, carrier, recipient name, room number, and receiving staff member
//   - Status follows a defined workflow: Received -> PickedUp, or Received -> Exception
//   - Both PickedUp and Exception are terminal; pickup is not repeatable
//   - Pickup attributes (who, when) exist exactly when the parcel is PickedUp
//   - Ids are assigned by the store and sealed into the aggregate exactly once
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package parcel
