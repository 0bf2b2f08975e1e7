// Package domain contains the core entities of the unit converter: conversion
// categories, units and the transient request and result value objects. It is
// independent of any delivery mechanism; the conversion rules themselves live
// in the conversion subpackage.
package domain
