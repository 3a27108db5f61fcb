package display

// HelpText is the full help message printed to stderr for --help / -h.
const HelpText = `my-ls - list directory contents

usage:
  my-ls [OPTION]... [--] [PATTERN]...

positional arguments:
  PATTERN        exact file names to match, or regular expressions
                 when --regex is given; the first non-option argument
                 (or a literal --) ends option parsing

options:
  -h, --help     show this help message and exit
  -v, --version  show program's version number and exit
  -a, --all      do not ignore entries starting with .
  -l, --long     use a long listing format with type marker and size
      --json     print the listing as a JSON array
      --classic  print the listing one entry per line (default)
      --regex    treat patterns as regular expressions

configuration:
  MYLS_CONFIG    path to an optional YAML defaults file
                 (falls back to .myls.yaml in the working directory)
  MYLS_LOG_LEVEL set to debug for diagnostic traces on stderr

exit status:
  0  success
  1  unexpected error
  2  syntax error in an option cluster
  3  at least one pattern matched nothing
  4  unrecognized option
  5  --json and --classic given together
`
