// Package models contains the GORM persistence models and their
// conversions to and from domain entities. Value objects are stored as
// primitive columns and revalidated through their constructors when
// rows are mapped back to the domain, so a corrupt row surfaces as an
// error instead of an invalid entity.
package models
