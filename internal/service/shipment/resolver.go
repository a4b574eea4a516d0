package shipment

import (
	"fmt"

	"service/internal/entities"
)

// Resolve derives the presentation status of one booking from the current
// snapshot. It is a pure function; precedence is fixed and must not be
// reordered: delivery evidence outranks manifest/trip evidence, which
// outranks raw booking-branch membership.
func Resolve(booking entities.Booking, snap *Snapshot, viewerBranchID string) Resolution {
	// 1. A POD resolving to the booking means delivered, regardless of
	// manifests or trips.
	if pod, ok := podFor(booking, snap.PODs); ok {
		return Resolution{
			Status:        entities.ShipmentDelivered,
			Discrepancies: discrepancies(booking, pod),
		}
	}

	// 2. Not on any manifest: still at its booking branch.
	manifest, ok := manifestFor(booking, snap.Manifests)
	if !ok {
		if booking.BranchID == viewerBranchID {
			return Resolution{Status: entities.ShipmentPendingDispatch}
		}
		return Resolution{Status: entities.ShipmentNotManifested}
	}

	// 3. A trip executing the manifest means the load is moving.
	if trip, ok := tripFor(manifest, snap.Trips); ok {
		return Resolution{
			Status:        entities.ShipmentInTransit,
			ManifestID:    manifest.ID,
			VehicleNumber: vehicleNumber(trip, snap.Vehicles),
		}
	}

	// 4. Manifested but not yet moving: where it lands decides the label.
	// A viewer with no branch scope is never "other branch".
	destination := destinationBranchID(manifest, snap)
	if viewerBranchID != "" && destination != viewerBranchID {
		return Resolution{
			Status:              entities.ShipmentManifestedOther,
			ManifestID:          manifest.ID,
			DestinationBranchID: destination,
		}
	}

	if receipt, ok := manifest.ReceiptFor(booking.ID); ok && receipt.Received {
		return Resolution{
			Status:              entities.ShipmentPendingDelivery,
			ManifestID:          manifest.ID,
			DestinationBranchID: destination,
		}
	}

	return Resolution{
		Status:              entities.ShipmentManifested,
		ManifestID:          manifest.ID,
		DestinationBranchID: destination,
	}
}

// discrepancies compares delivery evidence with the booking. Package count
// is the only check today; the list shape leaves room for more.
func discrepancies(booking entities.Booking, pod entities.ProofOfDelivery) []string {
	var result []string
	if pod.PiecesDelivered != nil && *pod.PiecesDelivered != booking.Pieces {
		result = append(result, fmt.Sprintf(
			"Pieces mismatch: Expected %d, Delivered %d",
			booking.Pieces, *pod.PiecesDelivered,
		))
	}
	return result
}
