// Package probe implements the single-shot reachability probe for HTTP,
// HTTPS, FTP and SSH endpoints.
//
// # Algorithm
//
// Every probe follows the same shape and differs only in the port and in
// whether a request is written:
//
//  1. Record the start time.
//  2. Dial TCP to destination on the protocol's standard port, bounded by
//     the configured timeout.
//  3. HTTP and HTTPS write a minimal "HEAD / HTTP/1.1" request. FTP and SSH
//     write nothing because their servers send a banner on connect.
//  4. Read up to ReadSize bytes.
//  5. Any non-empty read is UP. A failed dial, write or read, or a peer that
//     closes without sending data, is DOWN.
//  6. The elapsed time in milliseconds becomes the response time.
//
// A protocol outside the supported set is answered with UNSUPPORTED and a
// zero response time without touching the network.
//
// # Usage
//
//	prober := probe.New(probe.WithTimeout(5 * time.Second))
//	result := prober.Scan("example.com", model.SSH)
//	fmt.Println(result)
//
// Scan never returns an error. Every transport failure is folded into the
// DOWN status, so callers always receive a well-formed model.ScanResult.
//
// # Transport
//
// Connections are opened through a golang.org/x/net/proxy Dialer. The
// default is a direct net.Dialer; a SOCKS5 dialer from the socks package
// routes probes through a proxy such as Tor.
//
// # Concurrency
//
// A Prober holds only immutable configuration and opens one connection per
// Scan call, so a single Prober can be shared by many goroutines.
package probe
