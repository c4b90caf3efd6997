// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package analyzer implements the sharedparam static analysis pass.
//
// # Overview
//
// SharedParam detects functions that accept a shared-ownership handle by value
// although their body never needs shared ownership. Every such call costs the caller
// a reference count increment and the callee a matching decrement.
//
// A handle is a generic type with a single type argument, the pointee, that has a
// retain method returning a new handle (Clone, Retain, Share or Copy) and a release
// method (Release, Drop or DecRef). Further handle types and method names can be configured.
//
// # Example
//
// Before:
//
//	func total(order rc.Shared[Order]) int {
//	    defer order.Release()
//	    return order.Get().Quantity * order.Get().Price
//	}
//
// After applying sharedparam's suggested fix:
//
//	func total(order *Order) int {
//	    return order.Quantity * order.Price
//	}
//
// Call sites are not updated.
//
// # Ownership-Extending Uses
//
// A parameter needs shared ownership when the handle is stored, returned, passed by value,
// captured by a function literal that may outlive the call, retained or modified.
// Taking its address, calling a handle method that takes arguments or returns something
// able to hold the handle, and other unusual syntax is treated the same way.
//
// Suggested fixes rewrite only calls of the configured accessor (Get, Ptr, Deref) and
// loader (Load, Value) methods.
package analyzer
