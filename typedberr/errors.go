// Copyright 2020-2021 Dolthub, Inc.
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

// Package typedberr defines the compiler's stable error taxonomy. Every
// exported kind carries a component prefix so diagnostics stay portable
// across the wire, independent of any particular transport.
package typedberr

import (
	goerrors "gopkg.in/src-d/go-errors.v1"
)

// Component prefixes, one per error family in the taxonomy.
const (
	PrefixExecutableCompilation = "QEE"
	PrefixFunctionRepresent     = "QFR"
	PrefixFunctionRead          = "QFN"
	PrefixQuery                 = "QRY"
)

// ExecutableCompilationError kinds (prefix QEE).
var (
	ErrInsertExecutableCompilation = goerrors.NewKind(PrefixExecutableCompilation + ": failed to compile insert stage: %s")
	ErrDeleteExecutableCompilation = goerrors.NewKind(PrefixExecutableCompilation + ": failed to compile delete stage: %s")
	ErrFetchCompilation            = goerrors.NewKind(PrefixExecutableCompilation + ": failed to compile fetch clause: %s")
	ErrMatchCompilation            = goerrors.NewKind(PrefixExecutableCompilation + ": failed to compile match stage: %s")
	ErrModifierCompilation         = goerrors.NewKind(PrefixExecutableCompilation + ": failed to compile modifier stage: %s")
	ErrReduceCompilation            = goerrors.NewKind(PrefixExecutableCompilation + ": failed to compile reduce stage: %s")
	ErrLinksExecutableCompilation   = goerrors.NewKind(PrefixExecutableCompilation + ": failed to compile links executor: %s")
)

// FunctionRepresentationError kinds (prefix QFR).
var (
	ErrArgumentUnused           = goerrors.NewKind(PrefixFunctionRepresent + ": argument %s is never used by the function body")
	ErrReturnVariableUnavailable = goerrors.NewKind(PrefixFunctionRepresent + ": returned variable %s is unavailable at the return clause")
	ErrBlockDefinition          = goerrors.NewKind(PrefixFunctionRepresent + ": malformed block definition: %s")
	ErrReturnReduction          = goerrors.NewKind(PrefixFunctionRepresent + ": illegal reduction in return clause: %s")
	ErrIllegalFetchInFunction   = goerrors.NewKind(PrefixFunctionRepresent + ": fetch clauses are not permitted inside a function body")
	ErrIllegalWriteInFunction   = goerrors.NewKind(PrefixFunctionRepresent + ": write stage %s is not permitted inside a function body")
	ErrInconsistentReturn       = goerrors.NewKind(PrefixFunctionRepresent + ": inconsistent return shape across branches: %s")
	ErrReservedKeyword          = goerrors.NewKind(PrefixFunctionRepresent + ": %s is a reserved keyword")
)

// FunctionReadError kinds (prefix QFN).
var (
	ErrFunctionNotFound       = goerrors.NewKind(PrefixFunctionRead + ": function %s not found")
	ErrFunctionRetrieval      = goerrors.NewKind(PrefixFunctionRead + ": failed to retrieve function %s: %s")
	ErrFunctionScanFailed     = goerrors.NewKind(PrefixFunctionRead + ": failed to scan functions: %s")
)

// QueryError kinds (prefix QRY), covering the stages outside this core's
// direct control but whose component codes this core must still emit.
var (
	ErrParse                   = goerrors.NewKind(PrefixQuery + ": parse error: %s")
	ErrDefine                  = goerrors.NewKind(PrefixQuery + ": define error: %s")
	ErrRedefine                = goerrors.NewKind(PrefixQuery + ": redefine error: %s")
	ErrUndefine                = goerrors.NewKind(PrefixQuery + ": undefine error: %s")
	ErrFunctionDefinition      = goerrors.NewKind(PrefixQuery + ": function definition error: %s")
	ErrRepresentation          = goerrors.NewKind(PrefixQuery + ": representation error: %s")
	ErrAnnotation              = goerrors.NewKind(PrefixQuery + ": annotation error: %s")
	ErrCompilation             = goerrors.NewKind(PrefixQuery + ": compilation error: %s")
	ErrWritePipelineExecution  = goerrors.NewKind(PrefixQuery + ": write pipeline execution error: %s")
	ErrReadPipelineExecution   = goerrors.NewKind(PrefixQuery + ": read pipeline execution error: %s")
	ErrEarlyClosure            = goerrors.NewKind(PrefixQuery + ": pipeline closed before completion: %s")
)

// ErrVariableCategoryMismatch is raised by the variable registry when a
// second category assignment is incompatible with the first.
var ErrVariableCategoryMismatch = goerrors.NewKind("variable category mismatch: cannot narrow %s and %s for variable %s")
