package shipment

import "service/internal/entities"

// IsVisible decides whether a booking belongs on the viewer's worklist. It
// shares the manifest and destination-branch lookups with Resolve so the
// two can never disagree about where a shipment is headed.
//
// Admins with no branch selected see everything. Admins with a branch see
// both what that branch shipped and what it is due to receive. Branch users
// see their own pending dispatches and their own inbound deliveries, never
// another branch's outbound shipments.
func IsVisible(booking entities.Booking, snap *Snapshot, viewer entities.Viewer) bool {
	if viewer.IsAdmin() && viewer.BranchID == "" {
		return true
	}

	manifest, manifested := manifestFor(booking, snap.Manifests)

	fromBranch := booking.BranchID == viewer.BranchID
	toBranch := false
	if manifested {
		toBranch = destinationBranchID(manifest, snap) == viewer.BranchID
	}

	if viewer.IsAdmin() {
		return fromBranch || toBranch
	}

	if !manifested {
		return fromBranch
	}
	return toBranch
}
