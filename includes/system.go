package includes

// knownSystemIncludes lists header names commonly supplied by toolchains and
// C libraries. An include token found here is flagged as a system include in
// the statistics; the flag is informational only and never affects path
// resolution.
var knownSystemIncludes = map[string]bool{
	"_ansi.h": true, "_fake_defines.h": true, "_fake_typedefs.h": true,
	"_syslist.h": true, "aio.h": true, "alloca.h": true, "ar.h": true,
	"argz.h": true, "assert.h": true, "c_types.h": true, "cerrno": true,
	"cmath": true, "complex.h": true, "cpio.h": true, "cstddef": true,
	"cstdint": true, "cstdio": true, "cstdlib": true, "cstring": true,
	"ctype.h": true, "dirent.h": true, "dlfcn.h": true, "emmintrin.h": true,
	"endian.h": true, "envz.h": true, "errno.h": true, "evntprov.h": true,
	"evntrace.h": true, "fastmath.h": true, "fcntl.h": true, "features.h": true,
	"fenv.h": true, "float.h": true, "fmtmsg.h": true, "fnmatch.h": true,
	"ftw.h": true, "getopt.h": true, "glob.h": true, "grp.h": true,
	"iconv.h": true, "ieeefp.h": true, "immintrin.h": true, "intrinsics.h": true,
	"inttypes.h": true, "iso646.h": true, "langinfo.h": true, "libgen.h": true,
	"libintl.h": true, "limits.h": true, "locale.h": true, "malloc.h": true,
	"math.h": true, "monetary.h": true, "mqueue.h": true, "ndbm.h": true,
	"netdb.h": true, "newlib.h": true, "nl_types.h": true, "paths.h": true,
	"poll.h": true, "process.h": true, "pthread.h": true, "pwd.h": true,
	"reent.h": true, "regdef.h": true, "regex.h": true, "sched.h": true,
	"search.h": true, "semaphore.h": true, "setjmp.h": true, "signal.h": true,
	"smmintrin.h": true, "spawn.h": true, "stdarg.h": true, "stdbool.h": true,
	"stddef.h": true, "stdint.h": true, "stdio.h": true, "stdlib.h": true,
	"string.h": true, "strings.h": true, "stropts.h": true, "sys/mkdev.h": true,
	"sys/param.h": true, "sys/reboot.h": true, "sys/resource.h": true,
	"sys/signal.h": true, "sys/socket.h": true, "sys/stat.h": true,
	"sys/syscall.h": true, "sys/time.h": true, "sys/times.h": true,
	"sys/types.h": true, "sys/uio.h": true, "sys/un.h": true,
	"sys/wait.h": true, "syslog.h": true, "tar.h": true, "termios.h": true,
	"tgmath.h": true, "time.h": true, "trace.h": true, "ulimit.h": true,
	"unctrl.h": true, "unistd.h": true, "utime.h": true, "utmp.h": true,
	"utmpx.h": true, "wchar.h": true, "wctype.h": true, "windows.h": true,
	"winsock2.h": true, "wmistr.h": true, "wordexp.h": true, "zlib.h": true,
}

// IsSystem reports whether the include token names a known toolchain or C
// library header.
func IsSystem(token string) bool {
	return knownSystemIncludes[token]
}
