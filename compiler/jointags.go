package compiler

import "github.com/oxhq/queryc/fragment"

// CertnamesJoin is the one join tag either dataset kind currently
// recognizes (spec §3.2/§4.11): it pulls in the `certnames` table so
// `["node" "active"]` predicates can test `certnames.deactivated`.
const CertnamesJoin fragment.JoinTag = "certnames"
