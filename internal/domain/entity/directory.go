// Package entity contains the core business objects of the project.
package entity

// DirectoryEntry is the denormalized read model served on the public
// directory page: a business bundled with its operational info, a single
// thumbnail asset, and all of its services and coupons. Entries are
// assembled on demand and held only in the process-wide directory cache;
// they are never persisted.
type DirectoryEntry struct {
	Business        *BusinessProfile // The business profile itself.
	OperationalInfo *OperationalInfo // Hours and amenities. Nil when the owner never filled them in.
	Media           []*MediaAsset    // At most one asset, the first ever uploaded, used as a thumbnail.
	Services        []*Service       // Every service of the business, available or not.
	Coupons         []*Coupon        // Every coupon of the business, active or not.
}
